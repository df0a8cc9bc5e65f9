package docmodel

// Kind classifies a content block.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindList
	KindCode
	KindTable
	KindBlockquote
	KindRule
	KindChecklist
	KindChoice
)

// String returns the canonical lowercase name used by presentation layers.
func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindCode:
		return "code"
	case KindTable:
		return "table"
	case KindBlockquote:
		return "blockquote"
	case KindRule:
		return "hr"
	case KindChecklist:
		return "checklist"
	case KindChoice:
		return "choice"
	}
	return "unknown"
}

// Block is a contiguous typed span of document content at a fixed
// reading-order position.
type Block struct {
	ID           string   // unique token, or "" in deterministic mode
	Kind         Kind
	Level        int      // heading level 1-6; 0 for non-headings
	Content      string   // trimmed text content
	OrderIdx     int      // zero-based position in the document
	Placeholders []string // placeholder names found in Content, in order
}
