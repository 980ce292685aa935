package usecase

import "fmt"

// ValidationError is field-attributed so the dashboard can highlight the
// offending input. Never logged as a server fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError distinguishes "nothing happened" from "deleted": a second
// delete of the same id surfaces as this, not as success.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// StorageError wraps persistence failures. Callers retry only idempotent
// reads; writes are never retried automatically.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ImportRowError records a rejected CSV row. It never aborts the batch.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"reason"`
}

func (e *ImportRowError) Error() string {
	return fmt.Sprintf("row %d: %s %s", e.Row, e.Field, e.Message)
}
