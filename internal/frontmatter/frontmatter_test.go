package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

func TestStrip_Simple(t *testing.T) {
	body, meta, err := Strip("---\ntitle: Test\n---\n\n# Content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta == nil {
		t.Fatal("expected metadata")
	}
	if meta["title"] != "Test" {
		t.Errorf("expected title %q, got %v", "Test", meta["title"])
	}
	if !strings.Contains(body, "# Content") {
		t.Errorf("expected body to contain heading, got %q", body)
	}
	if strings.Contains(body, "---") {
		t.Errorf("expected delimiters stripped, got %q", body)
	}
}

func TestStrip_NestedValues(t *testing.T) {
	content := `---
title: My Document
author: Jo
tags:
  - go
  - markdown
settings:
  debug: true
count: 42
---

# Content here`

	body, meta, err := Strip(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta["title"] != "My Document" || meta["author"] != "Jo" {
		t.Errorf("unexpected scalars: %v", meta)
	}
	if meta["count"] != 42 {
		t.Errorf("expected count 42, got %v (%T)", meta["count"], meta["count"])
	}
	tags, ok := meta["tags"].([]any)
	if !ok || len(tags) != 2 {
		t.Errorf("expected 2 tags, got %v", meta["tags"])
	}
	settings, ok := meta["settings"].(map[string]any)
	if !ok || settings["debug"] != true {
		t.Errorf("expected nested mapping, got %v", meta["settings"])
	}
	if !strings.Contains(body, "# Content here") {
		t.Errorf("expected body preserved, got %q", body)
	}
}

func TestStrip_NoFrontmatter(t *testing.T) {
	content := "# Just a heading\n\nSome content"
	body, meta, err := Strip(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta != nil {
		t.Errorf("expected no metadata, got %v", meta)
	}
	if body != content {
		t.Errorf("expected content unchanged, got %q", body)
	}
}

func TestStrip_NoClosingDelimiter(t *testing.T) {
	content := "---\ntitle: Test\n# No closing delimiter"
	body, meta, err := Strip(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta != nil {
		t.Errorf("expected no metadata, got %v", meta)
	}
	if body != content {
		t.Errorf("expected content unchanged, got %q", body)
	}
}

func TestStrip_EmptyBlock(t *testing.T) {
	body, meta, err := Strip("---\n---\n\n# Content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta == nil {
		t.Fatal("expected empty non-nil metadata")
	}
	if len(meta) != 0 {
		t.Errorf("expected empty metadata, got %v", meta)
	}
	if !strings.Contains(body, "# Content") {
		t.Errorf("expected body preserved, got %q", body)
	}
}

func TestStrip_LeadingWhitespace(t *testing.T) {
	_, meta, err := Strip("\n\n---\ntitle: Test\n---\n\n# Content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta == nil || meta["title"] != "Test" {
		t.Errorf("expected title after leading whitespace, got %v", meta)
	}
}

func TestStrip_MalformedYAML(t *testing.T) {
	_, _, err := Strip("---\n:\ninvalid yaml\n---\n")
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestStrip_DashesLaterInBody(t *testing.T) {
	body, meta, err := Strip("---\ntitle: Test\n---\n\n# Content\n\nText with --- in it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta == nil {
		t.Fatal("expected metadata")
	}
	if !strings.Contains(body, "Text with --- in it") {
		t.Errorf("expected later dashes preserved, got %q", body)
	}
}

func TestParse(t *testing.T) {
	meta, err := Parse("---\ntitle: Test\nauthor: Me\n---\n\n# Content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meta) != 2 {
		t.Errorf("expected 2 keys, got %v", meta)
	}
}
