package validation

import s "adms/pkg/string"

// reservedWords are system account names that professional user names and
// activity names must not collide with. Matching is case-insensitive.
var reservedWords = []string{
	"admin",
	"administrator",
	"system",
	"root",
	"superuser",
	"service",
	"support",
	"guest",
	"nobody",
	"unknown",
}

// reservedPhrases are system-generated placeholders that matter descriptions
// and document file names must not collide with. Matching ignores case and
// whitespace runs.
var reservedPhrases = []string{
	"untitled matter",
	"new matter",
	"untitled document",
	"new document",
	"recycle bin",
	"system folder",
	"archive root",
	"default",
}

// IsReservedWord reports whether the value case-insensitively matches a
// reserved system word.
func IsReservedWord(value string) bool {
	for _, w := range reservedWords {
		if s.FoldEqual(value, w) {
			return true
		}
	}
	return false
}

// IsReservedPhrase reports whether the value collides with a reserved system
// phrase, ignoring case and whitespace differences.
func IsReservedPhrase(value string) bool {
	for _, p := range reservedPhrases {
		if s.NormalizeEqual(value, p) {
			return true
		}
	}
	return false
}
