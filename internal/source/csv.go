package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVReader converts CSV into a markdown pipe table, first row as header.
type CSVReader struct{}

func (r *CSVReader) Read(src io.Reader, filename string) (string, error) {
	reader := csv.NewReader(src)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	var out strings.Builder
	writeRow := func(cells []string) {
		out.WriteString("|")
		for _, cell := range cells {
			out.WriteString(" " + escapeCell(cell) + " |")
		}
		out.WriteString("\n")
	}

	headers := records[0]
	writeRow(headers)
	out.WriteString("|")
	for range headers {
		out.WriteString(" --- |")
	}
	out.WriteString("\n")

	for _, row := range records[1:] {
		writeRow(row)
	}

	return out.String(), nil
}

func escapeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "|", "\\|")
	return strings.ReplaceAll(cell, "\n", " ")
}
