// Package validation provides the explicit per-field rule sets used across
// the data model. Validators accumulate every violation instead of failing
// fast, never panic, and return plain data so callers can report everything
// at once. Rule predicates are shared between the accumulating validators
// and their quick boolean twins so the two can never disagree.
package validation

import (
	"strings"

	dErrors "adms/pkg/domain-errors"
	s "adms/pkg/string"
)

// Violation is a single field-scoped rule failure. Fields holds the
// snake_case names of every field implicated; referential-integrity
// violations name both the foreign key and the attached record's own
// identifier field.
type Violation struct {
	Fields      []string
	Message     string
	Referential bool
}

// New builds a rule violation for the given fields. Field names are given in
// Go style and recorded in snake_case.
func New(msg string, fields ...string) Violation {
	return Violation{Fields: snakeFields(fields), Message: msg}
}

// NewReferential builds a referential-integrity violation, the sub-case
// raised when an attached sub-record's identifier disagrees with the
// corresponding foreign key.
func NewReferential(msg string, fields ...string) Violation {
	return Violation{Fields: snakeFields(fields), Message: msg, Referential: true}
}

func snakeFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = s.ToSnakeCase(f)
	}
	return out
}

// String renders the violation as "field, field: message".
func (v Violation) String() string {
	if len(v.Fields) == 0 {
		return v.Message
	}
	return strings.Join(v.Fields, ", ") + ": " + v.Message
}

// Violations is the accumulated result of validating a record.
type Violations []Violation

// Empty reports whether validation passed.
func (vs Violations) Empty() bool { return len(vs) == 0 }

// Messages returns the rendered violation messages in order.
func (vs Violations) Messages() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

// Referential returns only the referential-integrity violations.
func (vs Violations) Referential() Violations {
	var out Violations
	for _, v := range vs {
		if v.Referential {
			out = append(out, v)
		}
	}
	return out
}

// ByField returns the violations implicating the given snake_case field name.
func (vs Violations) ByField(field string) Violations {
	var out Violations
	for _, v := range vs {
		for _, f := range v.Fields {
			if f == field {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// AsError converts a non-empty violation set into a coded domain error.
// Returns nil when validation passed, so callers can write
// `if err := rec.Validate().AsError(); err != nil`.
func (vs Violations) AsError() error {
	if vs.Empty() {
		return nil
	}
	return dErrors.New(dErrors.CodeValidation, strings.Join(vs.Messages(), "; "))
}

// Validatable is the explicit capability check for cross-field validation:
// collection validators recurse into elements that expose it.
type Validatable interface {
	Validate() Violations
}
