package parser

import (
	"testing"

	"github.com/dgallion1/mdstruct/internal/docmodel"
)

func noID() string { return "" }

func TestReducer_TextWithoutOpenBlockDropped(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{{kind: evText, text: "stray"}})
	if len(r.blocks) != 0 {
		t.Errorf("expected no blocks for text with no active kind, got %+v", r.blocks)
	}
}

func TestReducer_WhitespaceOnlyBlockDropped(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evStartParagraph},
		{kind: evText, text: "   \n  "},
		{kind: evEndParagraph},
	})
	if len(r.blocks) != 0 {
		t.Errorf("expected no blocks for whitespace-only content, got %+v", r.blocks)
	}
}

func TestReducer_RuleClosesOpenBlock(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evStartParagraph},
		{kind: evText, text: "open"},
		{kind: evRule},
	})
	if len(r.blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(r.blocks))
	}
	if r.blocks[0].Kind != docmodel.KindParagraph || r.blocks[0].Content != "open" {
		t.Errorf("unexpected first block: %+v", r.blocks[0])
	}
	if r.blocks[1].Kind != docmodel.KindRule || r.blocks[1].Content != "---" {
		t.Errorf("unexpected rule block: %+v", r.blocks[1])
	}
	if r.blocks[1].OrderIdx != 1 {
		t.Errorf("expected rule order idx 1, got %d", r.blocks[1].OrderIdx)
	}
}

func TestReducer_UnbalancedListEndDoesNotUnderflow(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evEndList}, // stray end at depth 0
		{kind: evStartList},
		{kind: evText, text: "item"},
		{kind: evEndList},
	})
	if len(r.blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(r.blocks))
	}
	if r.blocks[0].Kind != docmodel.KindList || r.blocks[0].Content != "item" {
		t.Errorf("unexpected block: %+v", r.blocks[0])
	}
}

func TestReducer_UnbalancedQuoteEndDoesNotUnderflow(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evEndQuote},
		{kind: evEndQuote},
		{kind: evStartQuote},
		{kind: evText, text: "quoted"},
		{kind: evEndQuote},
	})
	if len(r.blocks) != 1 || r.blocks[0].Kind != docmodel.KindBlockquote {
		t.Fatalf("unexpected blocks: %+v", r.blocks)
	}
}

func TestReducer_ParagraphInsideListMerges(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evStartList},
		{kind: evStartParagraph}, // ignored inside list
		{kind: evText, text: "first"},
		{kind: evEndParagraph}, // ignored inside list
		{kind: evStartParagraph},
		{kind: evText, text: "second"},
		{kind: evEndParagraph},
		{kind: evEndList},
	})
	if len(r.blocks) != 1 {
		t.Fatalf("expected 1 merged block, got %d", len(r.blocks))
	}
	if r.blocks[0].Content != "firstsecond" {
		t.Errorf("expected merged content, got %q", r.blocks[0].Content)
	}
}

func TestReducer_HeadingLevelClearedAfterFlush(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evStartHeading, level: 2},
		{kind: evText, text: "Head"},
		{kind: evEndHeading},
		{kind: evStartParagraph},
		{kind: evText, text: "Body"},
		{kind: evEndParagraph},
	})
	if len(r.blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(r.blocks))
	}
	if r.blocks[0].Level != 2 {
		t.Errorf("expected heading level 2, got %d", r.blocks[0].Level)
	}
	if r.blocks[1].Level != 0 {
		t.Errorf("expected paragraph level 0, got %d", r.blocks[1].Level)
	}
}

func TestReducer_DanglingOpenBlockFlushedAtEnd(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evStartParagraph},
		{kind: evText, text: "never closed"},
	})
	if len(r.blocks) != 1 || r.blocks[0].Content != "never closed" {
		t.Fatalf("expected trailing flush, got %+v", r.blocks)
	}
}

func TestReducer_BreaksAppendNewline(t *testing.T) {
	r := newReducer(noID)
	r.run([]event{
		{kind: evStartParagraph},
		{kind: evText, text: "a"},
		{kind: evSoftBreak},
		{kind: evText, text: "b"},
		{kind: evHardBreak},
		{kind: evText, text: "c"},
		{kind: evEndParagraph},
	})
	if r.blocks[0].Content != "a\nb\nc" {
		t.Errorf("expected newline joins, got %q", r.blocks[0].Content)
	}
}
