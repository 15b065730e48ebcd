// Package sanitize provides a declarative sanitize-and-validate pipeline
// for string input fields. Each field is run through an ordered constraint
// list; the first failing constraint records a field-scoped validation
// error and stops processing that field.
package sanitize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"threatmonitor-api/pkg/errors"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every HTML element, leaving only text content.
var stripPolicy = bluemonday.StrictPolicy()

// Constraint inspects (and possibly rewrites) a field value. It returns
// the cleaned value and an error message, empty when the value passes.
type Constraint func(label, value string) (cleaned string, message string)

// Required rejects values that are empty after trimming.
func Required() Constraint {
	return func(label, value string) (string, string) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return "", fmt.Sprintf("%s cannot be empty.", label)
		}
		return trimmed, ""
	}
}

// StripHTML removes HTML tags from the value (defense against stored
// markup) and trims the result. A value that is nothing but markup
// strips down to an empty string and is rejected, so tag-only input
// cannot slip past an earlier Required check.
func StripHTML() Constraint {
	return func(label, value string) (string, string) {
		stripped := strings.TrimSpace(stripPolicy.Sanitize(value))
		if stripped == "" {
			return "", fmt.Sprintf("%s cannot be empty.", label)
		}
		return stripped, ""
	}
}

// MaxLen rejects values longer than n characters. Runs after StripHTML so
// the cap applies to the stored content, not the raw input.
func MaxLen(n int) Constraint {
	return func(label, value string) (string, string) {
		if utf8.RuneCountInString(value) > n {
			return value, fmt.Sprintf("%s cannot exceed %d characters.", label, n)
		}
		return value, ""
	}
}

// Pipeline accumulates cleaned field values and validation errors.
type Pipeline struct {
	collector *errors.ValidationErrorCollector
	values    map[string]string
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{
		collector: errors.NewValidationErrorCollector(),
		values:    make(map[string]string),
	}
}

// Field runs value through the constraints in order and records the
// outcome under name. Returns the pipeline for chaining.
func (p *Pipeline) Field(name, value string, constraints ...Constraint) *Pipeline {
	label := Label(name)
	cleaned := value
	for _, constraint := range constraints {
		next, message := constraint(label, cleaned)
		if message != "" {
			p.collector.Add(errors.NewValidationError(400, name, message))
			return p
		}
		cleaned = next
	}
	p.values[name] = cleaned
	return p
}

// AddError records an externally-produced validation error for a field.
func (p *Pipeline) AddError(err *errors.ValidationError) *Pipeline {
	p.collector.Add(err)
	return p
}

// Value returns the cleaned value for a field that passed its constraints.
func (p *Pipeline) Value(name string) string {
	return p.values[name]
}

// Err returns the collected validation errors, or nil when every field passed.
func (p *Pipeline) Err() error {
	if p.collector.HasError() {
		return p.collector
	}
	return nil
}

// Label humanizes a snake_case field name for error messages:
// "source_name" becomes "Source name".
func Label(field string) string {
	words := strings.ReplaceAll(field, "_", " ")
	if words == "" {
		return words
	}
	return strings.ToUpper(words[:1]) + words[1:]
}
