// Package docmodel holds the typed document model produced by parsing:
// ordered blocks, sequential edges, checklist items, and placeholders.
package docmodel

import "github.com/dgallion1/mdstruct/internal/checklist"

// Document is a fully parsed document. It is assembled once per parse call
// and never mutated afterwards.
type Document struct {
	Title        string           // from the first level-1 heading, or ""
	Blocks       []Block          // ordered; Blocks[i].OrderIdx == i
	Placeholders []string         // deduplicated, sorted, document-wide
	Edges        []Edge           // len == max(len(Blocks)-1, 0)
	Checklist    []checklist.Item // in source line order
	Frontmatter  map[string]any   // nil unless a metadata block was present
}

// Block returns the block at idx, or nil if out of range.
func (d *Document) Block(idx int) *Block {
	if idx < 0 || idx >= len(d.Blocks) {
		return nil
	}
	return &d.Blocks[idx]
}

// BlockByID returns the first block with the given id, or nil.
func (d *Document) BlockByID(id string) *Block {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			return &d.Blocks[i]
		}
	}
	return nil
}

// BlocksByKind returns all blocks of the given kind, in document order.
func (d *Document) BlocksByKind(kind Kind) []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// ChecklistSummary derives completion counts over the document's checklist.
func (d *Document) ChecklistSummary() checklist.Summary {
	return checklist.Summarize(d.Checklist)
}
