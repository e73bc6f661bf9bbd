package filterql

import (
	"errors"
	"fmt"
)

// Parse sentinel errors, matchable with errors.Is.
var (
	// ErrInvalidSource is returned when the source is not a JSON-like
	// value at all.
	ErrInvalidSource = errors.New("sqlforge: filter source is not a JSON value")

	// ErrUnknownOperator is returned for an unrecognized operator
	// sigil.
	ErrUnknownOperator = errors.New("sqlforge: unknown filter operator")

	// ErrExpectedObject is returned when an object was required.
	ErrExpectedObject = errors.New("sqlforge: expected a JSON object")

	// ErrExpectedArray is returned when an array was required.
	ErrExpectedArray = errors.New("sqlforge: expected a JSON array")

	// ErrExpectedValue is returned when an operand is not a scalar or
	// array.
	ErrExpectedValue = errors.New("sqlforge: expected a scalar or array value")

	// ErrEmptyFieldName is returned for an empty field key.
	ErrEmptyFieldName = errors.New("sqlforge: field name must not be empty")

	// ErrEmptyFilter is returned for an empty filter object or an
	// empty condition list.
	ErrEmptyFilter = errors.New("sqlforge: filter must not be empty")

	// ErrInvalidOperatorValue is returned when an operator's operand
	// has the wrong shape, such as a $between list without exactly two
	// elements or a multi-key operator object.
	ErrInvalidOperatorValue = errors.New("sqlforge: invalid operand for operator")

	// ErrNotRequiresOneCondition is returned when $not does not wrap
	// exactly one condition.
	ErrNotRequiresOneCondition = errors.New("sqlforge: $not requires exactly one condition")
)

// ParseError wraps a parse sentinel with the path of the offending
// node. errors.Is matches the sentinel through Unwrap.
type ParseError struct {
	Path string
	err  error
}

// Error returns the error string.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (at %s)", e.err, e.Path)
	}
	return e.err.Error()
}

// Unwrap returns the sentinel error.
func (e *ParseError) Unwrap() error { return e.err }

// IsParseError reports whether err is a filter parse error.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	var e *ParseError
	return errors.As(err, &e)
}

func parseErr(sentinel error, path string) error {
	return &ParseError{Path: path, err: sentinel}
}

// Validation sentinel errors, matchable with errors.Is.
var (
	// ErrFieldNotAllowed is returned for a field outside the
	// whitelist.
	ErrFieldNotAllowed = errors.New("sqlforge: filter field is not allowed")

	// ErrOperatorDenied is returned for an operator on the denylist.
	ErrOperatorDenied = errors.New("sqlforge: filter operator is denied")

	// ErrNestingTooDeep is returned when the tree exceeds the
	// validator's depth limit.
	ErrNestingTooDeep = errors.New("sqlforge: filter nesting too deep")

	// ErrTooManyNodes is returned when validation visits more nodes
	// than the validator's cap.
	ErrTooManyNodes = errors.New("sqlforge: filter has too many nodes")
)

// ValidationError wraps a validation sentinel with the offending field
// or operator.
type ValidationError struct {
	Field string
	err   error
}

// Error returns the error string.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %q", e.err, e.Field)
	}
	return e.err.Error()
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error { return e.err }

// IsValidationError reports whether err is a filter validation error.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var e *ValidationError
	return errors.As(err, &e)
}

func validationErr(sentinel error, field string) error {
	return &ValidationError{Field: field, err: sentinel}
}
