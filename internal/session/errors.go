package session

import "fmt"

// NotFoundError is returned when no session exists for an ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}
