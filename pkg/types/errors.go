package types

import (
	"errors"
	"fmt"
)

// Entity errors.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownKind     = errors.New("unknown transport kind")
	ErrKindMismatch    = errors.New("field does not belong to this kind")
)

// Collection errors.
var (
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrInsufficientElements = errors.New("insufficient elements")
)

// ValidationError reports a numeric field outside its declared range.
// It unwraps to ErrInvalidArgument.
type ValidationError struct {
	Field string
	Value any
	Min   int
	Max   int
	Rule  string // validate tag that failed: "min" or "max"
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "min":
		return fmt.Sprintf("%s must be at least %d, got %v", e.Field, e.Min, e.Value)
	case "max":
		return fmt.Sprintf("%s must be at most %d, got %v", e.Field, e.Max, e.Value)
	default:
		return fmt.Sprintf("%s must be between %d and %d, got %v", e.Field, e.Min, e.Max, e.Value)
	}
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// IndexError reports an index argument the collection cannot serve. Err is
// ErrIndexOutOfRange or ErrInsufficientElements.
type IndexError struct {
	Op    string
	Index int
	Len   int
	Err   error
}

func (e *IndexError) Error() string {
	if errors.Is(e.Err, ErrInsufficientElements) {
		return fmt.Sprintf("%s: %v: need at least 2, have %d", e.Op, e.Err, e.Len)
	}
	if e.Len == 0 {
		return fmt.Sprintf("%s: %v: index %d, collection is empty", e.Op, e.Err, e.Index)
	}
	return fmt.Sprintf("%s: %v: index %d not in [0, %d]", e.Op, e.Err, e.Index, e.Len-1)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}
