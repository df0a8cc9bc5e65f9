// Package placeholder scans text for template placeholders of the form
// {{name}}, where name is one or more word characters.
package placeholder

import (
	"regexp"
	"slices"
)

var tokenRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Extract returns every placeholder name in content, left to right, including
// duplicates.
func Extract(content string) []string {
	var names []string
	for _, m := range tokenRe.FindAllStringSubmatch(content, -1) {
		names = append(names, m[1])
	}
	return names
}

// ExtractUnique returns the deduplicated placeholder names, sorted ascending.
func ExtractUnique(content string) []string {
	names := Extract(content)
	slices.Sort(names)
	return slices.Compact(names)
}

// Has reports whether content contains at least one placeholder.
func Has(content string) bool {
	return tokenRe.MatchString(content)
}

// Count returns the total number of placeholder occurrences in content.
func Count(content string) int {
	return len(tokenRe.FindAllStringIndex(content, -1))
}
