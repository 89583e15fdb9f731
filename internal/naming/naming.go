// Package naming converts identifier-style strings between common case
// conventions (camelCase, PascalCase, snake_case, kebab-case).
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Use golang.org/x/text/cases for proper Unicode title casing
// (strings.Title is deprecated).
var titleCaser = cases.Title(language.English)

// splitWords breaks an identifier into lowercase words. Separators
// (underscore, hyphen, dot, slash, space) and case boundaries both split;
// acronym runs like "APIKey" split into "api" and "key".
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.' || r == '/' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// ToPascal converts a string to PascalCase.
// Example: "user_profile" -> "UserProfile"
func ToPascal(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for _, w := range words {
		result.WriteString(titleCaser.String(w))
	}
	return result.String()
}

// ToCamel converts a string to camelCase.
// Example: "user_profile" -> "userProfile"
func ToCamel(s string) string {
	pascal := ToPascal(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnake converts a string to snake_case.
// Example: "UserProfile" -> "user_profile"
func ToSnake(s string) string {
	return strings.Join(splitWords(s), "_")
}

// ToKebab converts a string to kebab-case.
// Example: "UserProfile" -> "user-profile"
func ToKebab(s string) string {
	return strings.Join(splitWords(s), "-")
}
