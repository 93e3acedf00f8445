package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes that abort an operation.
// Content problems are never errors; they are reported as findings.
var (
	// ErrStructural marks malformed input: a bad header block, a row with the
	// wrong column count, or a duplicate record id.
	ErrStructural = errors.New("structural error")

	// ErrConfiguration marks invalid run parameters such as a non-positive
	// curator count or an overlap percentage outside [0,100).
	ErrConfiguration = errors.New("configuration error")
)

// StructuralError describes malformed input at an optional source location.
type StructuralError struct {
	Source string // File path or logical name; may be empty
	Row    int    // 1-based source line; 0 when the error is not row specific
	Msg    string
}

// NewStructuralError creates a structural error.
func NewStructuralError(source string, row int, format string, args ...any) *StructuralError {
	return &StructuralError{Source: source, Row: row, Msg: fmt.Sprintf(format, args...)}
}

func (e *StructuralError) Error() string {
	switch {
	case e.Source != "" && e.Row > 0:
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Row, e.Msg)
	case e.Source != "":
		return fmt.Sprintf("%s: %s", e.Source, e.Msg)
	case e.Row > 0:
		return fmt.Sprintf("row %d: %s", e.Row, e.Msg)
	default:
		return e.Msg
	}
}

// Is reports whether target is ErrStructural.
func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

// ConfigurationError describes an invalid parameter.
type ConfigurationError struct {
	Field string
	Msg   string
}

// NewConfigurationError creates a configuration error for the named field.
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }
