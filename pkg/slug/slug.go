package slug

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Make turns a title or name into a URL-safe slug: lowercase, strip
// everything outside [a-z0-9\s-], collapse whitespace, spaces to dashes.
// Input with no valid characters yields an empty slug.
func Make(text string) string {
	s := strings.ToLower(text)
	s = invalidChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	return strings.ReplaceAll(s, " ", "-")
}

// MakeWithID appends the entity id to the slug so that two rows with the
// same title never collide. The id is only known after insert, which is
// why slug-bearing creates are a two-step write.
func MakeWithID(text string, id int64) string {
	return Make(text) + "-" + strconv.FormatInt(id, 10)
}
