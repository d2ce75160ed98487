package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-advisor/internal/fetch"
	"github.com/jonathan/resume-advisor/internal/ingestion"
	"github.com/jonathan/resume-advisor/internal/jobs"
	"github.com/jonathan/resume-advisor/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPayloadTooLarge indicates an upload over the configured limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("upload exceeds %d bytes", e.Limit)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unsupported *ingestion.UnsupportedFormatError
		extraction  *ingestion.ExtractionError
		validation  *ErrValidation
		jobInvalid  *jobs.ValidationError
		notFound    *session.NotFoundError
		tooLarge    *ErrPayloadTooLarge
		fetchErr    *fetch.Error
	)
	switch {
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &extraction):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validation), errors.As(err, &jobInvalid):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
