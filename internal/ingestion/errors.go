package ingestion

import "fmt"

// UnsupportedFormatError is returned when a file extension is not a supported document format.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return fmt.Sprintf("unsupported format for %s: missing file extension", e.Path)
	}
	return fmt.Sprintf("unsupported format for %s: %s", e.Path, e.Extension)
}

// ExtractionError is returned when a supported document cannot be read.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
