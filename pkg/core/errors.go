package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched (via errors.Is) by every lookup miss.
var ErrNotFound = errors.New("not found")

// EmptyInputError is returned by an exporter that cannot derive its
// structure from an empty selection.
type EmptyInputError struct {
	Format string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s export needs at least one element", e.Format)
}

// MissingFieldError is returned when a record lacks a field the caller requires.
// Index is the record's position in the input, or -1 when unknown.
type MissingFieldError struct {
	Field  string
	Index  int
	Symbol string
}

func (e *MissingFieldError) Error() string {
	who := "record"
	if e.Index >= 0 {
		who = fmt.Sprintf("record %d", e.Index)
	}
	if e.Symbol != "" {
		who += fmt.Sprintf(" (%s)", e.Symbol)
	}
	return fmt.Sprintf("%s is missing field %q", who, e.Field)
}

// GroupNotFoundError is returned when no group has the requested display name.
type GroupNotFoundError struct {
	Name      string
	Available []string
}

func (e *GroupNotFoundError) Error() string {
	msg := fmt.Sprintf("group %q not found", e.Name)
	if len(e.Available) > 0 {
		msg += "\nAvailable groups: " + strings.Join(e.Available, ", ")
	}
	return msg
}

// Is makes GroupNotFoundError match ErrNotFound.
func (e *GroupNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldNotFoundError is returned when a user-supplied field name does not
// resolve to a dataset column.
type FieldNotFoundError struct {
	Field     string
	Available []string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("unknown field %q\nAvailable fields: %s", e.Field, strings.Join(e.Available, ", "))
}

// Is makes FieldNotFoundError match ErrNotFound.
func (e *FieldNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
