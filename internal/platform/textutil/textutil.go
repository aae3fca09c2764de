package textutil

import (
	"strings"
	"unicode"
)

// NormalizeSlug lowercases and trims a slug-like identifier.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// CapitalizeFirst upper-cases the first rune of s, leaving the rest intact.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ContainsCyrillic reports whether s has at least one Cyrillic rune.
func ContainsCyrillic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Cyrillic, r) {
			return true
		}
	}
	return false
}
