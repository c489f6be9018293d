package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the kind of failure.
type Category string

const (
	CategoryInvalidArgument Category = "invalid-argument"
	CategoryResourceMissing Category = "resource-missing"
	CategoryConsistency     Category = "consistency"
	CategoryDuplicateID     Category = "duplicate-id"
	CategoryNotImplemented  Category = "not-implemented"
	CategoryConfig          Category = "config"
	CategoryCLI             Category = "cli"
)

// Kind sentinels. errors.Is(err, KindInvalidArgument) matches every error of
// that category regardless of code.
var (
	KindInvalidArgument = &Error{Category: CategoryInvalidArgument, Message: "invalid argument"}
	KindResourceMissing = &Error{Category: CategoryResourceMissing, Message: "resource missing"}
	KindConsistency     = &Error{Category: CategoryConsistency, Message: "consistency error"}
	KindDuplicateID     = &Error{Category: CategoryDuplicateID, Message: "duplicate id"}
	KindNotImplemented  = &Error{Category: CategoryNotImplemented, Message: "not implemented"}
	KindConfig          = &Error{Category: CategoryConfig, Message: "configuration error"}
)

// Location points into a document or data file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as file:line[:column].
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a coded, categorized error.
type Error struct {
	// Code is a unique error identifier (e.g., "DV001").
	Code string

	// Category is the error kind.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, usually naming the offending value.
	Detail string

	// Location is the document position that caused the error.
	Location *Location

	// Context contains the lines surrounding Location.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example shows a correct snippet.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches a target with the same code, or a code-less kind sentinel with
// the same category.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == "" {
		return t.Category != "" && t.Category == e.Category
	}
	return t.Code == e.Code
}

// WithLocation records a file position and reads the surrounding lines.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithExample adds a correct snippet to the error.
func (e *Error) WithExample(ex string) *Error {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with formatting.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates an Error from a registered code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error under code. Errors that already are
// *Error are returned as-is.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return New(code).Wrap(err)
}
