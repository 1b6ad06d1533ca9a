package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a lookup, update, or delete matched no record.
	// Distinct from an empty list result.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned by stores when a write trips a unique index.
	// Services wrap it in a *ConflictError naming the colliding field.
	ErrDuplicate = errors.New("duplicate key")
)

// ConflictError reports a uniqueness violation on a named field.
type ConflictError struct {
	Entity string
	Field  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
}
