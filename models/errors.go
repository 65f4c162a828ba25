package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Query store related errors
var (
	// StoreError covers a query store that is unreachable or unwritable
	// beyond the retry budget. A missing or corrupt payload is NotFoundError,
	// not StoreError.
	StoreError = errors.New("query store unavailable")
)

// Rule tree related errors
var ErrInvalidRuleTree = errors.Wrap(BadParameterError, "invalid rule tree")

// RuleValidationError carries the path of the offending node inside a rule
// tree, so the caller can point at the exact rule that failed.
type RuleValidationError struct {
	// Path addresses the node from the root, e.g. "rules[1].rules[0]".
	Path   string
	Field  string
	Reason string
}

func (e RuleValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid rule at %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid rule at %s on field %q: %s", e.Path, e.Field, e.Reason)
}

func (e RuleValidationError) Is(target error) bool {
	return target == BadParameterError || target == ErrInvalidRuleTree
}

// Details formats the error in the field->messages shape of the error
// envelope.
func (e RuleValidationError) Details() map[string][]string {
	key := e.Field
	if key == "" {
		key = e.Path
	}
	return map[string][]string{key: {e.Reason}}
}

func NewRuleValidationError(path, field, reason string) RuleValidationError {
	return RuleValidationError{Path: path, Field: field, Reason: reason}
}
