package jobs

import "fmt"

// ValidationError represents invalid job requirements input
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid job requirements: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid job requirements: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// FileError represents a failure to read or decode a job requirements file
type FileError struct {
	Path    string
	Message string
	Cause   error
}

func (e *FileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job file %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("job file %s: %s", e.Path, e.Message)
}

func (e *FileError) Unwrap() error {
	return e.Cause
}
