package util

import (
	"errors"
	"fmt"
)

// Common error types for the oclogin CLI
var (
	// ErrInvalidConfig indicates a configuration error
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrClusterNotFound indicates a cluster was not found in the registry
	ErrClusterNotFound = errors.New("cluster not found")

	// ErrPersistence indicates the config file could not be read or written
	ErrPersistence = errors.New("config persistence failed")

	// ErrInvocation indicates the login tool could not be started
	ErrInvocation = errors.New("login command could not be started")
)

// RegisterHint tells the user how to save a missing cluster on the next attempt
const RegisterHint = "consider adding arguments --username and --cluster-url to save it"

// NotFoundError is returned when a cluster name is absent from the registry
type NotFoundError struct {
	ClusterName string
	Hint        string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("cluster with name %s not found in config file", e.ClusterName)
	if e.Hint != "" {
		msg += ", " + e.Hint
	}
	return msg
}

// Unwrap returns ErrClusterNotFound for errors.Is compatibility
func (e *NotFoundError) Unwrap() error {
	return ErrClusterNotFound
}

// NewNotFoundError creates a not found error carrying the registration hint
func NewNotFoundError(clusterName string) *NotFoundError {
	return &NotFoundError{
		ClusterName: clusterName,
		Hint:        RegisterHint,
	}
}

// PersistenceError wraps a failure to load or write the config file
type PersistenceError struct {
	// Op is "load" or "write"
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to %s config: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s config file %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying I/O error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is reports ErrPersistence as a match so callers can test the category
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// NewPersistenceError wraps err with the failed operation and file path
func NewPersistenceError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Path: path, Err: err}
}

// InvocationError wraps a failure to start the external login command
type InvocationError struct {
	Command string
	Err     error
}

// Error implements the error interface
func (e *InvocationError) Error() string {
	return fmt.Sprintf("failed to start %q: %v", e.Command, e.Err)
}

// Unwrap returns the underlying exec error
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvocation as a match so callers can test the category
func (e *InvocationError) Is(target error) bool {
	return target == ErrInvocation
}

// NewInvocationError wraps err with the command that failed to start
func NewInvocationError(command string, err error) error {
	if err == nil {
		return nil
	}
	return &InvocationError{Command: command, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if v.Value != nil {
		return fmt.Sprintf("validation failed for field %q (value: %v): %s", v.Field, v.Value, v.Message)
	}
	return fmt.Sprintf("validation failed for field %q: %s", v.Field, v.Message)
}

// Unwrap returns ErrInvalidConfig so validation failures share the config category
func (v *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsNotFound checks if an error is a cluster not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClusterNotFound)
}

// IsPersistence checks if an error came from reading or writing the config file
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// IsInvocation checks if an error came from starting the login command
func IsInvocation(err error) bool {
	return errors.Is(err, ErrInvocation)
}

// FriendlyError converts technical errors to user-friendly messages
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}

	var notFound *NotFoundError
	switch {
	case errors.As(err, &notFound):
		// The message already carries the remediation hint
		return notFound.Error()
	case IsPersistence(err):
		return "Could not read or write the cluster config file. Check the --config path and its permissions: " + err.Error()
	case IsInvocation(err):
		return "Could not start the login command. Make sure it is installed and on your PATH, or set --login-command: " + err.Error()
	case errors.Is(err, ErrInvalidConfig):
		return "Invalid configuration. Please check your config file and command-line flags: " + err.Error()
	default:
		return err.Error()
	}
}

// WrapErrorf wraps an error with a formatted message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
