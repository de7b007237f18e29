// Package usecase holds the pieces shared by every command service:
// validation errors with per-field messages and the common input checks.
package usecase

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// ErrBusy is returned when a command is rejected because another simulated
// task is still in flight.
var ErrBusy = errors.New("operation already in progress")

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func ValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// ValidationError reports every failed field at once. It is returned before
// any mutation; a command that yields one has changed nothing.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// ErrOrNil returns the error value, or nil when no field failed. The method
// exists so callers never return a typed nil inside an error interface.
func (e *ValidationError) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if e.Empty() {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
