package errors

import (
	"fmt"
)

// ParseError represents a token or config parsing failure with optional position metadata.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line, column int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Column: column, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("parse error: %s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a failed validation: a token document with errors,
// a malformed config field or an invalid form value.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildError represents a failure while generating a platform artifact.
type BuildError struct {
	Platform string
	File     string
	Err      error
}

// NewBuildError constructs a BuildError.
func NewBuildError(platform, file string, err error) error {
	return &BuildError{Platform: platform, File: file, Err: err}
}

func (e *BuildError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Platform != "" && e.File != "":
		return fmt.Sprintf("build error [%s] %s: %v", e.Platform, e.File, e.Err)
	case e.Platform != "":
		return fmt.Sprintf("build error [%s]: %v", e.Platform, e.Err)
	default:
		return fmt.Sprintf("build error: %v", e.Err)
	}
}

// Unwrap exposes the root error.
func (e *BuildError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError indicates an unusable project configuration file.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError for the given config path.
func NewConfigError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ConfigError{Path: path, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("config error [%s]: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
