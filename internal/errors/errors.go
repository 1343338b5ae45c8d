// Package errors provides categorized error handling for perch-go.
package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"time"
)

// ErrorCategory represents the type of error for better categorization
type ErrorCategory string

const (
	CategoryModelInit   ErrorCategory = "model-initialization"
	CategoryModelLoad   ErrorCategory = "model-loading"
	CategoryLabelLoad   ErrorCategory = "label-loading"
	CategoryValidation  ErrorCategory = "validation"
	CategoryFileIO      ErrorCategory = "file-io"
	CategoryAudioDecode ErrorCategory = "audio-decode"
	CategoryInference   ErrorCategory = "inference"
	CategoryFileParsing ErrorCategory = "file-parsing"
	CategoryGeneric     ErrorCategory = "generic"
)

// ComponentUnknown is used when the component has not been set.
const ComponentUnknown = "unknown"

// EnhancedError wraps an error with component, category and context metadata.
type EnhancedError struct {
	Err       error
	Component string
	Category  ErrorCategory
	Context   map[string]any
	Timestamp time.Time
}

// Error implements the error interface
func (ee *EnhancedError) Error() string {
	return ee.Err.Error()
}

// Unwrap implements the error unwrapping interface
func (ee *EnhancedError) Unwrap() error {
	return ee.Err
}

// Is matches two enhanced errors by category, otherwise defers to the
// wrapped error chain.
func (ee *EnhancedError) Is(target error) bool {
	if other, ok := target.(*EnhancedError); ok {
		return ee.Category == other.Category
	}
	return stderrors.Is(ee.Err, target)
}

// ErrorBuilder provides a fluent API for constructing enhanced errors
type ErrorBuilder struct {
	err       error
	component string
	category  ErrorCategory
	context   map[string]any
}

// New creates an ErrorBuilder wrapping the given error. A nil error is
// replaced with a generic placeholder so Build always yields a usable error.
func New(err error) *ErrorBuilder {
	if err == nil {
		err = stderrors.New("unspecified error")
	}
	return &ErrorBuilder{err: err, category: CategoryGeneric}
}

// Newf creates an ErrorBuilder from a formatted message.
func Newf(format string, args ...any) *ErrorBuilder {
	return New(fmt.Errorf(format, args...))
}

// Component sets the component where the error occurred
func (b *ErrorBuilder) Component(component string) *ErrorBuilder {
	b.component = component
	return b
}

// Category sets the error category
func (b *ErrorBuilder) Category(category ErrorCategory) *ErrorBuilder {
	b.category = category
	return b
}

// Context adds a key-value pair to the error context
func (b *ErrorBuilder) Context(key string, value any) *ErrorBuilder {
	if b.context == nil {
		b.context = make(map[string]any)
	}
	b.context[key] = value
	return b
}

// Build constructs the final EnhancedError
func (b *ErrorBuilder) Build() *EnhancedError {
	component := b.component
	if component == "" {
		component = ComponentUnknown
	}
	var context map[string]any
	if b.context != nil {
		context = make(map[string]any, len(b.context))
		maps.Copy(context, b.context)
	}
	return &EnhancedError{
		Err:       b.err,
		Component: component,
		Category:  b.category,
		Context:   context,
		Timestamp: time.Now(),
	}
}

// NewCategory returns a bare enhanced error usable as an errors.Is target
// for category matching.
func NewCategory(category ErrorCategory) *EnhancedError {
	return &EnhancedError{
		Err:      stderrors.New(string(category)),
		Category: category,
	}
}

// HasCategory reports whether any error in err's chain carries the category.
func HasCategory(err error, category ErrorCategory) bool {
	var ee *EnhancedError
	if As(err, &ee) {
		return ee.Category == category
	}
	return false
}

// Standard library pass-throughs so callers need only this package.

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Unwrap(err error) error { return stderrors.Unwrap(err) }

func Join(errs ...error) error { return stderrors.Join(errs...) }

// NewStd creates a standard error without enhancement
func NewStd(text string) error { return stderrors.New(text) }
