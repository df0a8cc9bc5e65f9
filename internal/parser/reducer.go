package parser

import (
	"strings"

	"github.com/dgallion1/mdstruct/internal/docmodel"
	"github.com/dgallion1/mdstruct/internal/placeholder"
)

// reducer folds the structural event stream into finalized blocks. It keeps
// one open block at a time: a text buffer plus the kind and heading level it
// will be finalized with. List and blockquote nesting is tracked with
// saturating depth counters so that nested containers merge into a single
// block and unbalanced End events cannot underflow.
type reducer struct {
	newID func() string

	buf    strings.Builder
	kind   docmodel.Kind
	active bool
	level  int

	listDepth  int
	quoteDepth int

	orderIdx int
	title    string
	titleSet bool

	blocks       []docmodel.Block
	placeholders []string // every occurrence across all blocks, in order
}

func newReducer(newID func() string) *reducer {
	return &reducer{newID: newID}
}

// run applies the whole stream and flushes whatever remains open.
func (r *reducer) run(evs []event) {
	for _, ev := range evs {
		r.apply(ev)
	}
	r.flush()
}

func (r *reducer) apply(ev event) {
	switch ev.kind {
	case evStartHeading:
		r.flush()
		r.open(docmodel.KindHeading)
		r.level = ev.level

	case evEndHeading:
		// The first level-1 heading becomes the document title.
		if !r.titleSet && r.level == 1 {
			r.title = strings.TrimSpace(r.buf.String())
			r.titleSet = true
		}
		r.flush()

	case evStartParagraph:
		// Paragraphs inside a list or blockquote merge into the container's
		// buffer instead of starting a block of their own.
		if r.listDepth == 0 && r.quoteDepth == 0 {
			r.flush()
			r.open(docmodel.KindParagraph)
		}

	case evEndParagraph:
		if r.listDepth == 0 && r.quoteDepth == 0 {
			r.flush()
		}

	case evStartCode:
		r.flush()
		r.open(docmodel.KindCode)

	case evEndCode:
		r.flush()

	case evStartList:
		if r.listDepth == 0 {
			r.flush()
			r.open(docmodel.KindList)
		}
		r.listDepth++

	case evEndList:
		if r.listDepth > 0 {
			r.listDepth--
		}
		if r.listDepth == 0 {
			r.flush()
		}

	case evStartQuote:
		if r.quoteDepth == 0 {
			r.flush()
			r.open(docmodel.KindBlockquote)
		}
		r.quoteDepth++

	case evEndQuote:
		if r.quoteDepth > 0 {
			r.quoteDepth--
		}
		if r.quoteDepth == 0 {
			r.flush()
		}

	case evStartTable:
		r.flush()
		r.open(docmodel.KindTable)

	case evEndTable:
		r.flush()

	case evRule:
		r.flush()
		r.blocks = append(r.blocks, docmodel.Block{
			ID:       r.newID(),
			Kind:     docmodel.KindRule,
			Content:  "---",
			OrderIdx: r.orderIdx,
		})
		r.orderIdx++

	case evText, evInlineCode:
		r.buf.WriteString(ev.text)

	case evSoftBreak, evHardBreak:
		r.buf.WriteByte('\n')
	}
}

func (r *reducer) open(kind docmodel.Kind) {
	r.kind = kind
	r.active = true
}

// flush finalizes the open block if its trimmed content is non-empty, then
// clears the buffer and heading level. With no open block it only clears.
func (r *reducer) flush() {
	if r.active {
		content := strings.TrimSpace(r.buf.String())
		if content != "" {
			vars := placeholder.Extract(content)
			r.placeholders = append(r.placeholders, vars...)
			r.blocks = append(r.blocks, docmodel.Block{
				ID:           r.newID(),
				Kind:         r.kind,
				Level:        r.level,
				Content:      content,
				OrderIdx:     r.orderIdx,
				Placeholders: vars,
			})
			r.orderIdx++
		}
		r.active = false
	}
	r.buf.Reset()
	r.level = 0
}
