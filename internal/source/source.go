// Package source normalizes supported input formats to markdown text so that
// a single structural parser covers every format.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Reader converts raw document bytes into markdown text.
type Reader interface {
	Read(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".html":     true,
	".htm":      true,
	".csv":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate reader for a filename.
func ForFile(filename string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return &MarkdownReader{}, nil
	case ".txt":
		return &TextReader{}, nil
	case ".html", ".htm":
		return &HTMLReader{}, nil
	case ".csv":
		return &CSVReader{}, nil
	case ".pdf":
		return &PDFReader{}, nil
	case ".docx":
		return &DOCXReader{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
