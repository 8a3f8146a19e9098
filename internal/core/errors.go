package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEditorClosed is returned by Commit when the editor is not open
	ErrEditorClosed = errors.New("editor is not open")

	// ErrUnknownField is returned for fields that are not user-editable
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError indicates user input was rejected
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError indicates the task is no longer in the stored list
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}

// StorageError wraps a failed store read or write
type StorageError struct {
	Operation string
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// requireField rejects a required value that is empty after trimming
// whitespace.
func requireField(field, value string) error {
	if isBlank(value) {
		return &ValidationError{Field: field, Message: "this field is required"}
	}

	return nil
}
