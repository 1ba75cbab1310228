package validation

import (
	"fmt"
	"time"
	"unicode"

	s "adms/pkg/string"
)

// Rules carries the tunable thresholds for the field-class validators.
// The zero value is not usable; start from DefaultRules.
type Rules struct {
	// ClockSkew is the tolerated gap between a timestamp and "now" before
	// the timestamp counts as being in the future.
	ClockSkew time.Duration
	// HistoricalFloor is the earliest timestamp the system accepts.
	// Records predate the firm's earliest electronic filings below it.
	HistoricalFloor time.Time
	// Short text bounds apply to usernames and activity names.
	MinShortText, MaxShortText int
	// Description bounds apply to matter descriptions and document file names.
	MinDescription, MaxDescription int
}

// DefaultRules returns the authoritative thresholds.
func DefaultRules() Rules {
	return Rules{
		ClockSkew:       5 * time.Minute,
		HistoricalFloor: time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC),
		MinShortText:    2,
		MaxShortText:    50,
		MinDescription:  3,
		MaxDescription:  128,
	}
}

// Default holds the rules in effect. Config overrides it at startup; it is
// not written after initialization.
var Default = DefaultRules()

// ID is the sentinel check every typed identifier supports.
type ID interface {
	IsNil() bool
}

// RequiredID validates that an identifier is present and not the all-zero
// sentinel. The field name is given in Go style (e.g. "MatterID").
func RequiredID(field string, id ID) Violations {
	if id == nil || id.IsNil() {
		return Violations{New("is required", field)}
	}
	return nil
}

// check pairs a predicate result with its failure message. Validators walk
// the same check list the quick boolean twins walk.
type check struct {
	ok  bool
	msg string
}

func collect(field string, checks []check) Violations {
	var vs Violations
	for _, c := range checks {
		if !c.ok {
			vs = append(vs, New(c.msg, field))
		}
	}
	return vs
}

func pass(checks []check) bool {
	for _, c := range checks {
		if !c.ok {
			return false
		}
	}
	return true
}

// ShortText validates a username or activity name against Default rules.
func ShortText(field, value string) Violations {
	return Default.ShortText(field, value)
}

// ShortTextOK is the quick twin of ShortText.
func ShortTextOK(value string) bool {
	return pass(Default.shortTextChecks(value))
}

func (r Rules) ShortText(field, value string) Violations {
	return collect(field, r.shortTextChecks(value))
}

func (r Rules) shortTextChecks(value string) []check {
	norm := s.Normalize(value)
	if norm == "" {
		return []check{{false, "is required"}}
	}
	n := len([]rune(norm))
	return []check{
		{n >= r.MinShortText, fmt.Sprintf("must be at least %d characters", r.MinShortText)},
		{n <= r.MaxShortText, fmt.Sprintf("must be at most %d characters", r.MaxShortText)},
		{allowedNameRunes(norm), "may only contain letters, digits, spaces, '.', '-' and '_'"},
		{!IsReservedWord(norm), "is a reserved word"},
	}
}

// Description validates a matter description or document file name against
// Default rules.
func Description(field, value string) Violations {
	return Default.Description(field, value)
}

// DescriptionOK is the quick twin of Description.
func DescriptionOK(value string) bool {
	return pass(Default.descriptionChecks(value))
}

func (r Rules) Description(field, value string) Violations {
	return collect(field, r.descriptionChecks(value))
}

func (r Rules) descriptionChecks(value string) []check {
	norm := s.Normalize(value)
	if norm == "" {
		return []check{{false, "is required"}}
	}
	runes := []rune(norm)
	n := len(runes)
	return []check{
		{n >= r.MinDescription, fmt.Sprintf("must be at least %d characters", r.MinDescription)},
		{n <= r.MaxDescription, fmt.Sprintf("must be at most %d characters", r.MaxDescription)},
		{containsLetter(runes), "must contain at least one letter"},
		{alphanumeric(runes[0]), "must start with a letter or digit"},
		{alphanumeric(runes[n-1]), "must end with a letter or digit"},
		{!IsReservedPhrase(norm), "collides with a reserved system phrase"},
	}
}

// Timestamp validates an audit timestamp against Default rules. The caller
// supplies "now"; the validators never read the clock themselves.
func Timestamp(field string, t, now time.Time) Violations {
	return Default.Timestamp(field, t, now)
}

// TimestampOK is the quick twin of Timestamp.
func TimestampOK(t, now time.Time) bool {
	return pass(Default.timestampChecks(t, now))
}

func (r Rules) Timestamp(field string, t, now time.Time) Violations {
	return collect(field, r.timestampChecks(t, now))
}

func (r Rules) timestampChecks(t, now time.Time) []check {
	if t.IsZero() {
		return []check{{false, "is required"}}
	}
	return []check{
		{t.Location() == time.UTC, "must be in UTC"},
		{!t.After(now.Add(r.ClockSkew)), "must not be in the future"},
		{!t.Before(r.HistoricalFloor), "is unreasonably far in the past"},
	}
}

// Each recursively validates every element of a collection. Nil collections
// are treated as absent, not as an error. Element violations are prefixed
// with the collection field name.
func Each[T Validatable](field string, items []T) Violations {
	var vs Violations
	for i, item := range items {
		for _, v := range item.Validate() {
			fields := make([]string, len(v.Fields))
			for j, f := range v.Fields {
				fields[j] = fmt.Sprintf("%s[%d].%s", s.ToSnakeCase(field), i, f)
			}
			vs = append(vs, Violation{Fields: fields, Message: v.Message, Referential: v.Referential})
		}
	}
	return vs
}

func allowedNameRunes(v string) bool {
	for _, r := range v {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		case r == ' ' || r == '.' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

func containsLetter(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func alphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
