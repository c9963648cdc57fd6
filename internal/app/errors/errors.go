package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies the failures surfaced by the conversion and transcription paths.
type Kind int

const (
	// KindNotFound means the referenced input file does not exist. Raised before
	// any processing starts.
	KindNotFound Kind = iota
	// KindValidation means the requested output location could not be prepared.
	KindValidation
	// KindProcessing means the external engine failed during decode, encode,
	// model load or inference. Always carries the original cause.
	KindProcessing
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// Error is the standardized error carried across the application.
type Error struct {
	kind    Kind
	message string
	cause   error
}

// NotFound creates a not-found error for a missing input file.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{kind: KindNotFound, message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error for an output location that cannot be prepared.
func Validation(cause error, format string, args ...interface{}) *Error {
	return &Error{kind: KindValidation, message: fmt.Sprintf(format, args...), cause: cause}
}

// Processing wraps a failure raised by an external engine, preserving the cause.
func Processing(cause error, format string, args ...interface{}) *Error {
	return &Error{kind: KindProcessing, message: fmt.Sprintf(format, args...), cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the error classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Is matches errors by kind and message so sentinel comparisons keep working
// across wrap boundaries.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind && (t.message == "" || e.message == t.message)
}

// KindOf extracts the Kind of err, or KindProcessing if err was not created here.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind
	}
	return KindProcessing
}

// IsNotFound checks whether err is a missing-input error.
func IsNotFound(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.kind == KindNotFound
}

// IsValidation checks whether err is an output-preparation error.
func IsValidation(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.kind == KindValidation
}

// IsProcessing checks whether err originated in an external engine.
func IsProcessing(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.kind == KindProcessing
}
