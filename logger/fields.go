package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across codedom.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldProvider  = "provider"
	FieldLanguage  = "language"

	// Declarations
	FieldNamespace = "namespace"
	FieldType      = "type"
	FieldMember    = "member"
	FieldKind      = "kind"

	// Operations
	FieldOperation  = "operation"
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Files and paths
	FieldFile    = "file"
	FieldPath    = "path"
	FieldSchema  = "schema"
	FieldCommand = "command"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type CodeGenerator struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func New() *CodeGenerator {
//	    return &CodeGenerator{
//	        logger: logger.ComponentLogger("generator"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	typeLogger := logger.ChildLogger(baseLogger, logger.FieldType, decl.Name())
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
