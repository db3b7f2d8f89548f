// Package errors provides custom error types for the images service.
// These errors enable programmatic error checking and a single place to
// map failures to HTTP responses.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are aliases for the standard library helpers so callers can
// use this package as a drop-in replacement.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the images service
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates that an external fetch failed
	ErrUpstream = errors.New("upstream fetch failed")

	// ErrTransform indicates that an image transform failed
	ErrTransform = errors.New("transform failed")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// UpstreamError represents a failed fetch from an external service
type UpstreamError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s failed with status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s failed: %v", e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(url string, statusCode int, err error) *UpstreamError {
	return &UpstreamError{URL: url, StatusCode: statusCode, Err: err}
}

// TransformError represents a failed image transform (resize, ASCII
// rendering, rasterization, dimension read)
type TransformError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s failed: %v", e.Op, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransformError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// NewTransformError creates a new TransformError
func NewTransformError(op string, err error) *TransformError {
	return &TransformError{Op: op, Err: err}
}

// ValidationError represents a validation failure on request input
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUpstream checks if an error is a failed external fetch
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsTransform checks if an error is a failed transform
func IsTransform(err error) bool {
	return errors.Is(err, ErrTransform)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// WrapUpstream wraps an error as an UpstreamError
func WrapUpstream(url string, err error) error {
	if err == nil {
		return nil
	}
	return NewUpstreamError(url, 0, err)
}

// WrapTransform wraps an error as a TransformError
func WrapTransform(op string, err error) error {
	if err == nil {
		return nil
	}
	return NewTransformError(op, err)
}
