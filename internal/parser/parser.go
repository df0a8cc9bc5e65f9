// Package parser converts markdown-like text into the typed document model:
// ordered blocks, sequential edges, checklist items, and placeholders.
package parser

import (
	"fmt"
	"os"
	"slices"

	"github.com/dgallion1/mdstruct/internal/checklist"
	"github.com/dgallion1/mdstruct/internal/docmodel"
	"github.com/dgallion1/mdstruct/internal/frontmatter"
	"github.com/google/uuid"
)

// Parser assembles Documents. The zero value is not useful; use New or
// NewWithoutIDs. A Parser holds no per-call state, so one instance can serve
// concurrent Parse calls.
type Parser struct {
	generateIDs bool
}

// New returns a parser that assigns a random UUID to every block.
func New() *Parser {
	return &Parser{generateIDs: true}
}

// NewWithoutIDs returns a parser that leaves block IDs empty, making output a
// deterministic function of input.
func NewWithoutIDs() *Parser {
	return &Parser{}
}

// Parse converts content into a Document.
//
// The only failure mode is a malformed YAML metadata block; everything else
// degrades into whatever blocks can be derived.
func (p *Parser) Parse(content string) (*docmodel.Document, error) {
	body, meta, err := frontmatter.Strip(content)
	if err != nil {
		return nil, err
	}

	red := newReducer(p.newID)
	red.run(markdownEvents([]byte(body)))

	vars := red.placeholders
	slices.Sort(vars)
	vars = slices.Compact(vars)

	return &docmodel.Document{
		Title:        red.title,
		Blocks:       red.blocks,
		Placeholders: vars,
		Edges:        buildEdges(len(red.blocks)),
		Checklist:    checklist.Extract(body),
		Frontmatter:  meta,
	}, nil
}

// ParseFile reads path and parses its content.
func (p *Parser) ParseFile(path string) (*docmodel.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.Parse(string(data))
}

func (p *Parser) newID() string {
	if p.generateIDs {
		return uuid.NewString()
	}
	return ""
}

// buildEdges links each block to its successor with a Follows edge.
func buildEdges(n int) []docmodel.Edge {
	var edges []docmodel.Edge
	for i := 0; i+1 < n; i++ {
		edges = append(edges, docmodel.Follows(i, i+1))
	}
	return edges
}
