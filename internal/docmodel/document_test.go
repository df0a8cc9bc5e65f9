package docmodel

import (
	"testing"

	"github.com/dgallion1/mdstruct/internal/checklist"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindHeading, "heading"},
		{KindParagraph, "paragraph"},
		{KindList, "list"},
		{KindCode, "code"},
		{KindTable, "table"},
		{KindBlockquote, "blockquote"},
		{KindRule, "hr"},
		{KindChecklist, "checklist"},
		{KindChoice, "choice"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): expected %q, got %q", tt.kind, tt.want, got)
		}
	}
}

func TestEdgeConstructors(t *testing.T) {
	f := Follows(0, 1)
	if f.SourceIdx != 0 || f.TargetIdx != 1 || f.Kind != EdgeFollows {
		t.Errorf("unexpected follows edge: %+v", f)
	}
	c := Contains(2, 3)
	if c.Kind != EdgeContains {
		t.Errorf("unexpected contains edge: %+v", c)
	}
	if EdgeFollows.String() != "follows" || EdgeContains.String() != "contains" {
		t.Error("unexpected edge kind names")
	}
}

func TestDocumentHelpers(t *testing.T) {
	doc := &Document{
		Blocks: []Block{
			{ID: "a", Kind: KindHeading, Content: "Title", OrderIdx: 0},
			{ID: "b", Kind: KindParagraph, Content: "Text", OrderIdx: 1},
			{ID: "c", Kind: KindHeading, Content: "Subtitle", OrderIdx: 2},
		},
	}

	if b := doc.Block(1); b == nil || b.ID != "b" {
		t.Errorf("Block(1): expected b, got %+v", b)
	}
	if doc.Block(-1) != nil || doc.Block(3) != nil {
		t.Error("expected nil for out-of-range index")
	}
	if b := doc.BlockByID("c"); b == nil || b.Content != "Subtitle" {
		t.Errorf("BlockByID(c): got %+v", b)
	}
	if doc.BlockByID("missing") != nil {
		t.Error("expected nil for unknown id")
	}
	if got := doc.BlocksByKind(KindHeading); len(got) != 2 {
		t.Errorf("expected 2 headings, got %d", len(got))
	}
}

func TestDocumentChecklistSummary(t *testing.T) {
	doc := &Document{
		Checklist: []checklist.Item{
			{Text: "Task 1", Checked: true},
			{Text: "Task 2"},
		},
	}
	s := doc.ChecklistSummary()
	if s.Total != 2 || s.Completed != 1 || s.Pending != 1 {
		t.Errorf("unexpected summary: %+v", s)
	}
}
