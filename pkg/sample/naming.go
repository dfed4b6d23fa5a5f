package sample

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultTypeName derives an entity type name from a sample file path when the
// caller supplies none: strip the directory and extension, split the remainder
// on non-alphanumeric runes, and capitalize each word. "user_posts.json"
// becomes "UserPosts".
func DefaultTypeName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	words := strings.FieldsFunc(base, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	for _, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
