package errors

import (
	"fmt"
	"strings"

	"github.com/wippyai/docwriter/result"
)

// Error is the structured diagnostic reported by a serialization pass.
type Error struct {
	Value    any
	Cause    error
	Task     result.Task
	Outcome  result.Outcome
	TypeName string
	Detail   string
	Path     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(e.Task.String())
	b.WriteString("] ")
	b.WriteString(e.Outcome.String())

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if msg := e.Message(); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}

	return b.String()
}

// Message renders the error without its status and path. It is the message
// handed to reporting callbacks.
func (e *Error) Message() string {
	var b strings.Builder

	if e.TypeName != "" {
		b.WriteString("type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if b.Len() > 0 {
			b.WriteString(" - ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("(caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Task == t.Task && e.Outcome == t.Outcome
	}
	return false
}

// Status returns the (task, outcome) pair of the error.
func (e *Error) Status() result.Status {
	return result.New(e.Task, e.Outcome)
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(task result.Task, outcome result.Outcome) *Builder {
	return &Builder{
		err: Error{
			Task:    task,
			Outcome: outcome,
		},
	}
}

// Path sets the document path
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// TypeName sets the Go type name
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common diagnostics

// FromReport creates an error from the arguments of a reporting callback.
func FromReport(message string, status result.Status, path string) *Error {
	return &Error{
		Task:    status.Task,
		Outcome: status.Outcome,
		Path:    path,
		Detail:  message,
	}
}

// MissingClassData creates an error for a type with no registered layout.
func MissingClassData(typeName string) *Error {
	return &Error{
		Task:     result.TaskRetrieveInfo,
		Outcome:  result.Unknown,
		TypeName: typeName,
		Detail:   "no class data registered",
	}
}

// DefaultFailed creates an error for a default instance that could not be built.
func DefaultFailed(typeName string) *Error {
	return &Error{
		Task:     result.TaskCreateDefault,
		Outcome:  result.Unsupported,
		TypeName: typeName,
		Detail:   "unable to create default instance",
	}
}

// Unsupported creates an unsupported value error
func Unsupported(typeName, what string) *Error {
	return &Error{
		Task:     result.TaskWriteValue,
		Outcome:  result.Unsupported,
		TypeName: typeName,
		Detail:   what,
	}
}

// InvalidEnum creates an error for an enum value with no name.
func InvalidEnum(value any, enumType string) *Error {
	return &Error{
		Task:     result.TaskWriteValue,
		Outcome:  result.Unknown,
		TypeName: enumType,
		Detail:   fmt.Sprintf("no name for enum value %v", value),
		Value:    value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(task result.Task, outcome result.Outcome, cause error, detail string) *Error {
	return &Error{
		Task:    task,
		Outcome: outcome,
		Detail:  detail,
		Cause:   cause,
	}
}
