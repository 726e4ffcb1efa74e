// Package errors provides standardized error handling for the ferry
// application. It defines the failure taxonomy shared by the browse,
// transfer and app packages, plus helpers for consistent error creation,
// wrapping and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Listing error kinds
	ListingUnreadable
	InvalidPath
	// Transfer error kinds
	TransferEngineFailed
	TransferLaunchFailed
	// Dispatch error kinds
	NoSelection
	// Config error kinds
	InvalidConfig
)

// ErrNoSelection is returned when a command needs a selected entry and the
// pane has none. Callers treat it as a silent no-op.
var ErrNoSelection = &ApplicationError{msg: "no entry selected", kind: NoSelection}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ListingError represents a failure to read a directory listing
type ListingError struct {
	ApplicationError
	path string
}

// NewListingError creates a new listing error
func NewListingError(msg string, path string, kind ErrorKind, err error) *ListingError {
	return &ListingError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the listing error message
func (e *ListingError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the directory path associated with the error
func (e *ListingError) Path() string {
	return e.path
}

// TransferError represents a failed copy between the two panes
type TransferError struct {
	ApplicationError
	source string
	dest   string
}

// NewTransferError creates a new transfer error
func NewTransferError(msg string, source, dest string, kind ErrorKind, err error) *TransferError {
	return &TransferError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		source: source,
		dest:   dest,
	}
}

// Error returns the transfer error message
func (e *TransferError) Error() string {
	if e.source != "" || e.dest != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s -> %s: %v", e.msg, e.source, e.dest, e.err)
		}
		return fmt.Sprintf("%s: %s -> %s", e.msg, e.source, e.dest)
	}
	return e.ApplicationError.Error()
}

// Source returns the source path associated with the error
func (e *TransferError) Source() string {
	return e.source
}

// Dest returns the destination path associated with the error
func (e *TransferError) Dest() string {
	return e.dest
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidConfig,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsListingUnreadable checks if the error is an unreadable-listing error
func IsListingUnreadable(err error) bool {
	var listErr *ListingError
	if errors.As(err, &listErr) {
		return listErr.Kind() == ListingUnreadable
	}
	return false
}

// IsTransferEngineFailed checks if the error reports a copy engine failure
func IsTransferEngineFailed(err error) bool {
	var trErr *TransferError
	if errors.As(err, &trErr) {
		return trErr.Kind() == TransferEngineFailed
	}
	return false
}

// IsTransferLaunchFailed checks if the error reports a copy engine that
// could not be invoked at all
func IsTransferLaunchFailed(err error) bool {
	var trErr *TransferError
	if errors.As(err, &trErr) {
		return trErr.Kind() == TransferLaunchFailed
	}
	return false
}

// IsNoSelection checks if the error is a missing-selection error
func IsNoSelection(err error) bool {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind() == NoSelection
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
