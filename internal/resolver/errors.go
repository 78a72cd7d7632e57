// Package resolver merges statically-configured provider and sender identity
// definitions with mutable store records, with configuration winning on
// handle collisions.
package resolver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrReadOnlyConfigRecord is returned for any attempted mutation of a
// config-origin record. It is distinct from validation failure.
var ErrReadOnlyConfigRecord = errors.New("record is read-only: defined in configuration")

// ValidationError reports administrative write failures per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InUseError blocks deletion of a record that other integrations reference.
type InUseError struct {
	Handle string
	Usages []Usage
}

func (e *InUseError) Error() string {
	labels := make([]string, 0, len(e.Usages))
	for _, usage := range e.Usages {
		labels = append(labels, usage.Label)
	}
	return fmt.Sprintf("%q is in use and cannot be deleted (%s)", e.Handle, strings.Join(labels, ", "))
}
