package render

import "unicode"

// LowerFirst lowercases the first rune of a type name, yielding the singular
// value name used in generated code ("User" → "user").
func LowerFirst(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Plural appends a literal pluralizing suffix. The generator promises
// mechanical naming, not English pluralization: "Person" → "Persons".
func Plural(name string) string {
	if name == "" {
		return ""
	}
	return name + "s"
}
