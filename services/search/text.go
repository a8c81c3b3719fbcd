package search

import (
	"strings"
	"unicode"
)

// lowerTr lower-cases a string using Turkish casing rules, so that
// dotted/dotless I pairs fold the way the source data expects
// ("İSTANBUL" -> "istanbul", "ILGIN" -> "ılgın").
func lowerTr(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// containsTr reports whether s contains substr, both compared under
// Turkish lower-casing.
func containsTr(s, substr string) bool {
	return strings.Contains(lowerTr(s), lowerTr(substr))
}

// splitList splits a comma-separated query value into trimmed tokens,
// dropping empty entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
