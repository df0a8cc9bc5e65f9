// Package checklist extracts task-list lines (`- [ ]` / `- [x]`) from raw
// text, independent of the block parser.
package checklist

import (
	"regexp"
	"strings"
)

// itemRe matches a checklist line: leading whitespace, dash, bracketed marker,
// then the item text.
var itemRe = regexp.MustCompile(`^(\s*)- \[([ xX])\] (.+)$`)

// refRe matches an acceptance-criteria annotation like `(AC: 1, 2, 3)`.
var refRe = regexp.MustCompile(`\(AC:\s*([^)]+)\)`)

// Item is a single checklist line.
type Item struct {
	Text    string   // line remainder after the checkbox marker
	Checked bool     // [x] or [X] vs [ ]
	Indent  int      // nesting level: leading whitespace bytes / 2
	Refs    []string // references from the first (AC: ...) annotation
}

// Summary aggregates completion state over a set of items.
type Summary struct {
	Total      int
	Completed  int
	Pending    int
	Percentage float64
}

// Extract returns every checklist item in content, in source line order.
func Extract(content string) []Item {
	var items []Item
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		m := itemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		items = append(items, Item{
			Text:    m[3],
			Checked: strings.EqualFold(m[2], "x"),
			Indent:  len(m[1]) / 2,
			Refs:    extractRefs(m[3]),
		})
	}
	return items
}

// extractRefs pulls reference tokens out of the first (AC: ...) group in
// text. A second group on the same line is ignored.
func extractRefs(text string) []string {
	m := refRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var refs []string
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			refs = append(refs, part)
		}
	}
	return refs
}

// Summarize derives completion counts from items.
func Summarize(items []Item) Summary {
	total := len(items)
	completed := 0
	for _, item := range items {
		if item.Checked {
			completed++
		}
	}
	pct := 0.0
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}
	return Summary{
		Total:      total,
		Completed:  completed,
		Pending:    total - completed,
		Percentage: pct,
	}
}

// Complete reports whether there is at least one item and all are checked.
func (s Summary) Complete() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// Empty reports whether nothing has been completed (or there are no items).
func (s Summary) Empty() bool {
	return s.Total == 0 || s.Completed == 0
}
