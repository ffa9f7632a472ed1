package swagger

import (
	"errors"
	"fmt"

	"github.com/vitalvas/swaggerdoc/validation"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrNotConfigured is returned by registry operations invoked before
	// Configure.
	ErrNotConfigured = errors.New("swagger: registry not configured")

	// ErrConflictingPath is returned when dotted body field names cannot be
	// nested, e.g. both "a" and "a.b" are declared.
	ErrConflictingPath = validation.ErrConflictingPath

	// ErrModelNameClash is returned when a nested body field would be
	// extracted into a model named like the body model itself.
	ErrModelNameClash = errors.New("swagger: model name clash")
)

// NotConfiguredError reports the registry operation that ran before
// Configure.
type NotConfiguredError struct {
	Op string
}

// Error implements the error interface.
func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("swagger: %s: registry not configured", e.Op)
}

// Is reports whether target is ErrNotConfigured.
func (e *NotConfiguredError) Is(target error) bool {
	return target == ErrNotConfigured
}

// RouteError wraps a failure to compile one mounted route.
type RouteError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	return fmt.Sprintf("swagger: compile %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying compile error.
func (e *RouteError) Unwrap() error {
	return e.Err
}

// ModelNameClashError reports a nested body field whose extracted model
// would replace the body model of the same route.
type ModelNameClashError struct {
	// Model is the body model name.
	Model string
	// Field is the dotted body field that maps to Model.
	Field string
}

// Error implements the error interface.
func (e *ModelNameClashError) Error() string {
	return fmt.Sprintf("swagger: body field %q extracts to model %q, the name of the body model", e.Field, e.Model)
}

// Is reports whether target is ErrModelNameClash.
func (e *ModelNameClashError) Is(target error) bool {
	return target == ErrModelNameClash
}
