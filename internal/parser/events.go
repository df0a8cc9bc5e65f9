package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// eventKind enumerates the structural events the reducer consumes: start/end
// pairs for containers, plus leaf events carrying text or breaks.
type eventKind int

const (
	evStartHeading eventKind = iota
	evEndHeading
	evStartParagraph
	evEndParagraph
	evStartCode
	evEndCode
	evStartList
	evEndList
	evStartQuote
	evEndQuote
	evStartTable
	evEndTable
	evRule
	evText
	evInlineCode
	evSoftBreak
	evHardBreak
)

type event struct {
	kind  eventKind
	level int    // heading level, evStartHeading only
	text  string // evText / evInlineCode only
}

// markdownEvents parses src with goldmark and flattens the AST into an
// ordered, well-nested event stream.
func markdownEvents(src []byte) []event {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(src))

	var evs []event
	emit := func(k eventKind, level int) { evs = append(evs, event{kind: k, level: level}) }

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Heading:
			if entering {
				emit(evStartHeading, node.Level)
			} else {
				emit(evEndHeading, 0)
			}
		case *ast.Paragraph:
			if entering {
				emit(evStartParagraph, 0)
			} else {
				emit(evEndParagraph, 0)
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				emit(evStartCode, 0)
				evs = append(evs, lineEvents(n, src)...)
				emit(evEndCode, 0)
			}
			return ast.WalkSkipChildren, nil
		case *ast.List:
			if entering {
				emit(evStartList, 0)
			} else {
				emit(evEndList, 0)
			}
		case *ast.Blockquote:
			if entering {
				emit(evStartQuote, 0)
			} else {
				emit(evEndQuote, 0)
			}
		case *east.Table:
			if entering {
				emit(evStartTable, 0)
			} else {
				emit(evEndTable, 0)
			}
		case *ast.ThematicBreak:
			if entering {
				emit(evRule, 0)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				evs = append(evs, event{kind: evText, text: string(node.Segment.Value(src))})
				if node.HardLineBreak() {
					emit(evHardBreak, 0)
				} else if node.SoftLineBreak() {
					emit(evSoftBreak, 0)
				}
			}
		case *ast.String:
			if entering {
				evs = append(evs, event{kind: evText, text: string(node.Value)})
			}
		case *ast.CodeSpan:
			if entering {
				evs = append(evs, event{kind: evInlineCode, text: inlineText(n, src)})
			}
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			if entering {
				evs = append(evs, event{kind: evText, text: string(node.Label(src))})
			}
			return ast.WalkSkipChildren, nil
		}
		// Every other node contributes only through its inline children.
		return ast.WalkContinue, nil
	})

	return evs
}

// lineEvents emits one Text event per source line of a code block.
func lineEvents(n ast.Node, src []byte) []event {
	var evs []event
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		evs = append(evs, event{kind: evText, text: string(seg.Value(src))})
	}
	return evs
}

// inlineText concatenates the raw text of a node's inline children.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
		}
	}
	return buf.String()
}
