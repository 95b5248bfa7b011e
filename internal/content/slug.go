package content

import (
	"strings"
)

// Slugify derives the URL slug for a name: lower case, spaces become
// dashes, "&" becomes "and" and "/" becomes "_". Applying it to an
// already derived slug changes nothing.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "/", "_")

	return s
}
