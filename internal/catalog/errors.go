package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("entity not found")

// ValidationError carries field-level messages for a rejected submission.
// Database unique violations that slip past pre-validation are converted to
// this type as well, so callers never see a raw constraint fault.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Blocker is a dependent row that prevents a delete.
type Blocker struct {
	Entity string `json:"entity"`
	ID     int64  `json:"id"`
	Label  string `json:"label"`
}

// DeleteBlockedError is the refusal outcome of a delete request: the target
// still has dependent rows. It is normal control flow, not a fault.
type DeleteBlockedError struct {
	Entity   string
	ID       int64
	Blockers []Blocker
}

func (e *DeleteBlockedError) Error() string {
	return fmt.Sprintf("%s %d cannot be deleted: %d dependent row(s) exist", e.Entity, e.ID, len(e.Blockers))
}

// AsValidationError unwraps err into a ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsDeleteBlockedError unwraps err into a DeleteBlockedError if it is one.
func AsDeleteBlockedError(err error) (*DeleteBlockedError, bool) {
	var de *DeleteBlockedError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
