package errors

import (
	"errors"
	"strings"
)

// Metadata carries the attributes that end up as log fields, such as the
// URL or status code of a failed request.
type Metadata map[string]interface{}

// AppError is the error type returned across package boundaries. Module and
// Operation locate the failure; Metadata describes the record or request involved.
type AppError struct {
	Code      string
	Category  ErrorCategory
	Message   string
	Module    string
	Operation string
	Err       error
	Metadata  Metadata
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString("[" + string(e.Category) + ":" + e.Code + "] " + e.Message)
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *AppError) WithModule(module string) *AppError {
	e.Module = module
	return e
}

func (e *AppError) WithOperation(operation string) *AppError {
	e.Operation = operation
	return e
}

// WithField sets one metadata entry, replacing any previous value for key.
func (e *AppError) WithField(key string, value interface{}) *AppError {
	return e.WithFields(Metadata{key: value})
}

// WithFields copies every entry of metadata onto the error.
func (e *AppError) WithFields(metadata Metadata) *AppError {
	for k, v := range metadata {
		if e.Metadata == nil {
			e.Metadata = make(Metadata, len(metadata))
		}
		e.Metadata[k] = v
	}
	return e
}

// As finds the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// HasCategory reports whether err's chain holds an AppError of category.
func HasCategory(err error, category ErrorCategory) bool {
	appErr, ok := As(err)
	return ok && appErr.Category == category
}
