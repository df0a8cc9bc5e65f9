// Package frontmatter strips and decodes a leading YAML metadata block
// delimited by `---` lines.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is wrapped by errors returned for YAML that fails to decode
// inside an otherwise well-delimited metadata block.
var ErrMalformed = errors.New("malformed frontmatter")

// Strip removes a leading metadata block from content and decodes it.
//
// If content (after leading whitespace) does not start with `---`, or no
// closing `---` line follows, the original content is returned unchanged with
// a nil mapping. An empty block decodes to an empty, non-nil mapping.
func Strip(content string) (string, map[string]any, error) {
	trimmed := strings.TrimLeftFunc(content, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, "---") {
		return content, nil, nil
	}

	after := trimmed[3:]
	end := strings.Index(after, "\n---")
	if end < 0 {
		// No closing delimiter: treat as regular content.
		return content, nil, nil
	}

	raw := strings.TrimPrefix(after[:end], "\n")
	body := strings.TrimLeft(after[end+4:], "\n")

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return body, meta, nil
}

// Parse decodes the metadata block without stripping it, returning nil when
// none is present.
func Parse(content string) (map[string]any, error) {
	_, meta, err := Strip(content)
	return meta, err
}
