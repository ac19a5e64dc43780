package hashing

import (
	"errors"
	"fmt"
)

// ValidationError indica entrada inválida do chamador (HTTP 422).
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ComputeError indica falha interna durante ou após a derivação (HTTP 500).
type ComputeError struct {
	Op  string
	Err error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ComputeError) Unwrap() error {
	return e.Err
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation informa se err carrega um ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsCompute informa se err carrega um ComputeError.
func IsCompute(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce)
}
