package core

import "fmt"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError reports malformed or rejected input.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return "invalid input"
	}
	return err.Err.Error()
}

// NotFoundError reports a missing resource.
type NotFoundError struct {
	Resource   string
	Identifier string
}

func NewNotFoundError(resource, identifier string) error {
	return &NotFoundError{Resource: resource, Identifier: identifier}
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", err.Resource, err.Identifier)
}

// DuplicateError reports a unique-key collision on a resource field.
type DuplicateError struct {
	Resource string
	Field    string
	Value    string
}

func NewDuplicateError(resource, field, value string) error {
	return &DuplicateError{Resource: resource, Field: field, Value: value}
}

func (err DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s '%s' already exists", err.Resource, err.Field, err.Value)
}

// DatabaseError wraps an unexpected storage fault. Repositories convert any
// driver error they do not recognize into one of these so the transport layer
// only ever sees the four known kinds.
type DatabaseError struct {
	Message string
	Err     error
}

func NewDatabaseError(err error, msg string) error {
	return &DatabaseError{Message: msg, Err: err}
}

func (err DatabaseError) Error() string {
	if err.Err == nil {
		return err.Message
	}
	return fmt.Sprintf("%s: %v", err.Message, err.Err)
}

func (err DatabaseError) Unwrap() error { return err.Err }
