package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports missing or invalid request fields. It is surfaced with code "400".
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return strings.Join(msgs, ", ")
}

// Add records a failing field and returns the receiver so calls can be chained.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// OrNil returns nil when no field has been recorded.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func Invalid(field, message string) error {
	return (&ValidationError{}).Add(field, message)
}

func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// UpstreamError is a vendor call that failed and had no placeholder to fall back on.
type UpstreamError struct {
	Vendor string
	Err    error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func Upstream(vendor string, err error) error {
	return &UpstreamError{Vendor: vendor, Err: err}
}
