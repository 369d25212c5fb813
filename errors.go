package osdsl

import (
	"errors"
	"fmt"
)

// MissingFieldError reports a builder that was finalized without one of its
// required fields. Field is the builder's field name, Builder the builder
// type that rejected the call.
type MissingFieldError struct {
	Builder string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %q is not set", e.Builder, e.Field)
}

// NewMissingFieldError returns a MissingFieldError for the given builder and
// field.
func NewMissingFieldError(builder, field string) error {
	return &MissingFieldError{Builder: builder, Field: field}
}

// IsMissingField reports whether err is (or wraps) a MissingFieldError.
func IsMissingField(err error) bool {
	var mfe *MissingFieldError
	return errors.As(err, &mfe)
}

// DecodeError reports a response payload that did not match the expected
// shape. Path locates the offending value inside the document
// (e.g. "aggregations.by_tag.buckets[2].key"), Expected names the shape the
// decoder wanted, and Raw carries the text that failed to decode so callers
// can log or inspect it.
type DecodeError struct {
	Path     string
	Expected string
	Raw      string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("decode %s: expected %s: %v", e.Path, e.Expected, e.Err)
	}
	return fmt.Sprintf("decode: expected %s: %v", e.Expected, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NewDecodeError builds a DecodeError. raw is truncated to keep error
// messages bounded; the first kilobyte is enough to identify the payload.
func NewDecodeError(path, expected string, raw []byte, err error) error {
	const maxRaw = 1024
	s := string(raw)
	if len(s) > maxRaw {
		s = s[:maxRaw]
	}
	return &DecodeError{Path: path, Expected: expected, Raw: s, Err: err}
}
