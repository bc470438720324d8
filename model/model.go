package model

import (
	"sort"

	"github.com/tsawler/booknav/toc"
)

// Attrs holds the provider-supplied attributes attached to a section or
// page. The content system exposes these as "extra" front-matter values.
type Attrs struct {
	// Order is the sort key for sibling ordering (ascending).
	Order float64 `json:"order"`

	// Summary is an optional short description of the node.
	Summary string `json:"summary,omitempty"`

	// Book marks a section as the root of a chaptered document.
	Book bool `json:"book,omitempty"`

	// Extra carries any additional provider attributes unmodified.
	Extra map[string]string `json:"extra,omitempty"`
}

// Page is a leaf content node.
type Page struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"` // pre-rendered HTML
	Attrs   Attrs  `json:"attrs"`

	// Ancestors lists the paths of the enclosing sections, outermost first,
	// ending with the immediate parent.
	Ancestors []string `json:"ancestors,omitempty"`

	// Toc is the provider-supplied heading outline for this page's content,
	// at most six levels deep. May be nil.
	Toc []*toc.Entry `json:"toc,omitempty"`
}

// Section is a container node. A section may act as a page in its own right
// (it has a title and content) and may additionally contain child pages and
// child sections.
type Section struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Attrs   Attrs  `json:"attrs"`

	Ancestors []string `json:"ancestors,omitempty"`

	// Subsections lists the paths of direct child sections. The paths are
	// resolved through a SectionLoader; unresolvable entries are skipped.
	Subsections []string `json:"subsections,omitempty"`

	// Pages holds the section's own child pages.
	Pages []*Page `json:"pages,omitempty"`

	Toc []*toc.Entry `json:"toc,omitempty"`
}

// AsPage returns a Page view of the section, so a section can be navigated
// to like any other page.
func (s *Section) AsPage() *Page {
	return &Page{
		Path:      s.Path,
		Title:     s.Title,
		Content:   s.Content,
		Attrs:     s.Attrs,
		Ancestors: s.Ancestors,
		Toc:       s.Toc,
	}
}

// SortSectionsByOrder sorts sections ascending by Attrs.Order. The sort is
// stable: equal keys keep the provider's original order.
func SortSectionsByOrder(sections []*Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Attrs.Order < sections[j].Attrs.Order
	})
}

// SortPagesByOrder sorts pages ascending by Attrs.Order. The sort is
// stable: equal keys keep the provider's original order.
func SortPagesByOrder(pages []*Page) {
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Attrs.Order < pages[j].Attrs.Order
	})
}
