// Package domain defines the values a calculation session works with
// and the error taxonomy shared across packages.
package domain

import (
	"errors"
	"fmt"
)

// Operation is the user-chosen selector identifying which arithmetic
// operation to perform.
type Operation int

const (
	OpAdd      Operation = 1
	OpSubtract Operation = 2
	OpMultiply Operation = 3
	OpDivide   Operation = 4
)

// Valid reports whether the selector lies in the supported range.
func (op Operation) Valid() bool {
	return op >= OpAdd && op <= OpDivide
}

// String returns the menu label for the operation.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// HealthStatus represents the status of a health check
type HealthStatus string

const (
	StatusOK    HealthStatus = "OK"
	StatusWarn  HealthStatus = "WARN"
	StatusError HealthStatus = "ERROR"
)

// HealthCheck represents a single health check result
type HealthCheck struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message"`
}

// Sentinel errors
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnknownOperation = errors.New("unknown operation")
)

// ParseError reports an input token that could not be read as the
// expected value. Field names the token being read ("choice", "first
// number", "second number"); Token is the raw input, empty when the
// stream ended before a token arrived.
type ParseError struct {
	Field string
	Token string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("missing %s", e.Field)
	}
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Token)
}

// NewParseError creates a parse error for the given token position.
func NewParseError(field, token string) error {
	return &ParseError{Field: field, Token: token}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}
