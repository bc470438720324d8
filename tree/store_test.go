package tree

import (
	"strings"
	"testing"

	"github.com/tsawler/booknav/model"
)

func TestStore_SectionLookup(t *testing.T) {
	guide := &model.Section{Path: "guide/_index.md", Title: "Guide"}
	store := New(guide)

	if got := store.Section("guide/_index.md"); got != guide {
		t.Errorf("Expected stored section, got %v", got)
	}
	if got := store.Section("missing/_index.md"); got != nil {
		t.Errorf("Expected nil for missing path, got %v", got)
	}
}

func TestStore_AddReplacesSamePath(t *testing.T) {
	store := New(&model.Section{Path: "a/_index.md", Title: "Old"})
	store.Add(&model.Section{Path: "a/_index.md", Title: "New"})

	if store.Len() != 1 {
		t.Fatalf("Expected 1 section, got %d", store.Len())
	}
	if got := store.Section("a/_index.md"); got.Title != "New" {
		t.Errorf("Expected replacement section, got %q", got.Title)
	}
}

func TestStore_PageLookup(t *testing.T) {
	setup := &model.Section{
		Path:  "guide/setup/_index.md",
		Title: "Setup",
		Pages: []*model.Page{
			{Path: "guide/setup/install.md", Title: "Install"},
		},
	}
	store := New(setup)

	page := store.Page("guide/setup/install.md")
	if page == nil || page.Title != "Install" {
		t.Fatalf("Expected page Install, got %v", page)
	}

	// A section path resolves through its page view.
	asPage := store.Page("guide/setup/_index.md")
	if asPage == nil || asPage.Title != "Setup" {
		t.Fatalf("Expected section page view, got %v", asPage)
	}

	if got := store.Page("guide/setup/missing.md"); got != nil {
		t.Errorf("Expected nil for missing page, got %v", got)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"guide/_index.md", "guide/_index.md"},
		{"./guide/_index.md", "guide/_index.md"},
		{"/guide/_index.md", "guide/_index.md"},
		{"guide//setup/../_index.md", "guide/_index.md"},
		{"guide\\setup\\_index.md", "guide/setup/_index.md"},
		{".", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q): expected %q, got %q", tt.in, tt.want, got)
			}
		})
	}
}

func TestNormalizePath_UnicodeForms(t *testing.T) {
	// "é" composed vs decomposed must normalize to the same key.
	composed := "café/_index.md"
	decomposed := "cafe\u0301/_index.md"

	if NormalizePath(composed) != NormalizePath(decomposed) {
		t.Errorf("Expected NFC-equal paths to normalize identically: %q vs %q",
			NormalizePath(composed), NormalizePath(decomposed))
	}

	store := New(&model.Section{Path: composed, Title: "Café"})
	if got := store.Section(decomposed); got == nil {
		t.Error("Expected decomposed path spelling to resolve the stored section")
	}
}

func TestLoad_Snapshot(t *testing.T) {
	const data = `{
		"sections": [
			{
				"path": "guide/_index.md",
				"title": "Guide",
				"attrs": {"order": 0, "book": true},
				"subsections": ["guide/intro/_index.md"]
			},
			{
				"path": "guide/intro/_index.md",
				"title": "Intro",
				"attrs": {"order": 1},
				"pages": [
					{"path": "guide/intro/start.md", "title": "Start", "attrs": {"order": 1}}
				]
			}
		]
	}`

	store, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Expected 2 sections, got %d", store.Len())
	}

	guide := store.Section("guide/_index.md")
	if guide == nil || !guide.Attrs.Book {
		t.Fatalf("Expected book-flagged Guide section, got %v", guide)
	}
	intro := store.Section("guide/intro/_index.md")
	if intro == nil || len(intro.Pages) != 1 || intro.Pages[0].Title != "Start" {
		t.Fatalf("Expected Intro with page Start, got %v", intro)
	}
}

func TestLoad_Malformed(t *testing.T) {
	if _, err := Load(strings.NewReader("{not json")); err == nil {
		t.Error("Expected error for malformed snapshot")
	}
}

func TestLoadSnapshot_Bytes(t *testing.T) {
	store, err := LoadSnapshot([]byte(`{"sections": []}`))
	if err != nil {
		t.Fatalf("LoadSnapshot returned error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d sections", store.Len())
	}
}
