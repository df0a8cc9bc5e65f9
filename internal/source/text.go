package source

import (
	"io"
	"strings"
)

// MarkdownReader passes markdown input through unchanged.
type MarkdownReader struct{}

func (r *MarkdownReader) Read(src io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TextReader handles plain text. Blank-line-separated paragraphs are already
// valid markdown, so it only normalizes line endings.
type TextReader struct{}

func (r *TextReader) Read(src io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
