// Package string provides small text helpers shared across contexts,
// including canonical normalization of human-entered text.
package string

import (
	"strings"
	"unicode"
)

func TrimStrings(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}

func TrimSlice(ss []string) {
	for i := range ss {
		ss[i] = strings.TrimSpace(ss[i])
	}
}

func ToSnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Normalize canonicalizes human-entered free text: leading and trailing
// whitespace is removed and internal runs of whitespace collapse to a single
// space. Case is left intact. Whitespace-only input yields the empty string.
// Normalize is total and idempotent.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FoldEqual reports whether two strings are equal under simple
// case-insensitive comparison. Inputs are compared as-is; normalize first
// when whitespace differences should not matter.
func FoldEqual(a, b string) bool {
	return foldString(a) == foldString(b)
}

// NormalizeEqual reports whether two strings are equal after normalization
// and case folding. This is the comparison used for content-equality
// fallbacks on records that have not been assigned an identifier yet.
func NormalizeEqual(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Fold returns the canonical comparison form of a string: normalized and
// case-folded. Two strings are NormalizeEqual iff their Fold forms match,
// which makes Fold suitable for hashing alongside content equality.
func Fold(s string) string {
	return foldString(Normalize(s))
}

// foldString maps every rune to its fold-orbit representative, the single
// canonical form shared by equality and hashing. Full-orbit folding catches
// runes like U+017F LONG S that plain lower-casing leaves distinct from "s".
func foldString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

// foldRune returns the lower-cased minimum of the rune's simple
// case-folding orbit. Runes EqualFold treats as equal share an orbit, so
// they share a representative.
func foldRune(r rune) rune {
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return unicode.ToLower(m)
}
