// internal/errors/errors.go
package appErrors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when no record exists for the given identifier.
// Message is the text sent back to the client.
type ErrNotFound struct {
	Entity  string
	ID      int
	Message string
}

func (e *ErrNotFound) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// NewNotFound builds a not-found error for entity/id.
func NewNotFound(entity string, id int) error {
	return &ErrNotFound{Entity: entity, ID: id}
}

// WithMessage returns a copy carrying a different client-facing message.
func (e *ErrNotFound) WithMessage(msg string) error {
	return &ErrNotFound{Entity: e.Entity, ID: e.ID, Message: msg}
}

// ErrValidation carries field-level constraint failures keyed by JSON field name.
type ErrValidation struct {
	Fields map[string][]string
}

func (e *ErrValidation) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidation(fields map[string][]string) error {
	return &ErrValidation{Fields: fields}
}

// ErrFormatRejected is raised by the ad hoc suffix checks on customer contact fields.
type ErrFormatRejected struct {
	Field string
}

func (e *ErrFormatRejected) Error() string {
	return fmt.Sprintf("Bad format for the %s.", e.Field)
}

func NewFormatRejected(field string) error {
	return &ErrFormatRejected{Field: field}
}
