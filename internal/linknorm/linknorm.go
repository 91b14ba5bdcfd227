// Package linknorm turns pasted embed codes or links into a single embed URL
// and checks that it points at Google Slides.
package linknorm

import (
	"regexp"
	"strings"
)

// EmbedURLPrefix is the only accepted start of an embed URL.
const EmbedURLPrefix = "https://docs.google.com/presentation/"

// srcAttr matches a double-quoted, non-empty src attribute.
// Single-quoted attributes are not recognised.
var srcAttr = regexp.MustCompile(`src="([^"]+)"`)

// Normalize returns the value of the first src="..." attribute in input.
// When there is none, it returns input with surrounding whitespace trimmed.
func Normalize(input string) string {
	if m := srcAttr.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	return strings.TrimSpace(input)
}

// IsValidEmbedURL reports whether url starts with EmbedURLPrefix.
func IsValidEmbedURL(url string) bool {
	return strings.HasPrefix(url, EmbedURLPrefix)
}
