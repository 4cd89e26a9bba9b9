package categories

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// titleCase normalizes a category name: "web development" -> "Web Development"
func titleCase(name string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
