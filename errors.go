package coax

import (
	"errors"
	"fmt"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type" // input had the wrong shape for the validator
	CodeRequired      = "required"     // entry absent (or null without a null-accepting validator)
	CodeConstraint    = "constraint"   // value failed a constraint, including rewrapped user-code failures
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
)

// Issue is the single diagnosed failure of a validate call. Validation is
// fail-fast: the first failure anywhere aborts the whole call, so one call
// yields at most one Issue describing one problem and its exact location.
type Issue struct {
	Code    string
	Path    Path
	Message string
	Value   any    // offending raw value; nil when the input was absent
	Field   string // primary name of the innermost field being resolved, when applicable
	Cause   error  // underlying error when wrapping user-code failures
}

// Error renders "code at path: message"; the path and message parts are
// stable.
func (is *Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", is.Code, is.Path, is.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (is *Issue) Unwrap() error { return is.Cause }

// AsIssue extracts an *Issue from an error using errors.As internally.
func AsIssue(err error) (*Issue, bool) {
	if err == nil {
		return nil, false
	}
	var is *Issue
	if errors.As(err, &is) {
		return is, true
	}
	return nil, false
}

// Recognized failure categories for user-supplied converters and
// constructors. User code signals a recoverable failure by returning an error
// that wraps one of these sentinels; the engine rewraps it as a constraint
// Issue at the current path. Every other error is a programming error and
// propagates untouched.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMalformedInput  = errors.New("malformed input")
	ErrTypeMismatch    = errors.New("type mismatch")
)

func recognizedForeign(err error) bool {
	return errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrTypeMismatch)
}
