// Package naming derives the identifier forms a scaffold plan uses for
// file names, type names, and table names. Derivation is a pure function
// of the raw entity name.
package naming

import (
	"strings"
	"unicode"

	"github.com/tstackhq/tstack-kit/internal/errors"
)

// Identifiers holds every naming form derived from a raw entity name.
// JSON tags match the placeholder names used in generated templates.
type Identifiers struct {
	// LowerCamel is the lowercased singular form, e.g. "article" or "siteSetting".
	LowerCamel string `json:"entityName"`
	// UpperCamel is the capitalized singular form, e.g. "Article".
	UpperCamel string `json:"EntityName"`
	// LowerCamelPlural is the pluralized lowercase form, e.g. "articles".
	LowerCamelPlural string `json:"entityNamePlural"`
	// UpperCamelPlural is the pluralized capitalized form, e.g. "Articles".
	UpperCamelPlural string `json:"EntityNamePlural"`
	// TableName is the relational table name, equal to LowerCamelPlural.
	TableName string `json:"tableName"`
}

// Derive computes every naming form from a raw singular entity name.
// The name must be non-empty and purely alphabetic.
func Derive(raw string) (Identifiers, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Identifiers{}, errors.NewInvalidIdentifierError(raw, "name is empty")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return Identifiers{}, errors.NewInvalidIdentifierError(raw, "name must contain only letters")
		}
	}

	lower := lowerFirst(name)
	upper := upperFirst(name)
	lowerPlural := Pluralize(lower)
	upperPlural := Pluralize(upper)

	return Identifiers{
		LowerCamel:       lower,
		UpperCamel:       upper,
		LowerCamelPlural: lowerPlural,
		UpperCamelPlural: upperPlural,
		TableName:        lowerPlural,
	}, nil
}

// Pluralize applies a simple English pluralization rule: append "s",
// trailing "y" becomes "ies", and s/x/ch/sh endings take "es".
// Irregular plurals (person -> people) are a known limitation and are
// not handled; the simple rule applies to them as well.
func Pluralize(word string) string {
	if word == "" {
		return word
	}

	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "y"):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(lower, "s"),
		strings.HasSuffix(lower, "x"),
		strings.HasSuffix(lower, "ch"),
		strings.HasSuffix(lower, "sh"):
		return word + "es"
	default:
		return word + "s"
	}
}

// Snake converts a camelCase identifier to snake_case, e.g.
// "authorId" -> "author_id".
func Snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
