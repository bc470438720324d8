package resolver

import (
	"strings"

	"github.com/tsawler/booknav/model"
)

// DefaultIndexMarker is the filename that identifies a section's own index
// node in the content tree. Only paths ending in the marker can name a
// section.
const DefaultIndexMarker = "_index.md"

// SectionLoader loads sections from the content tree by path. A path that
// does not resolve returns nil; missing references are never errors.
type SectionLoader interface {
	Section(path string) *model.Section
}

// Resolver computes navigation for pages of a content tree.
type Resolver struct {
	loader      SectionLoader
	indexMarker string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithIndexMarker overrides the filename that identifies section index
// nodes (default "_index.md").
func WithIndexMarker(marker string) Option {
	return func(r *Resolver) {
		if marker != "" {
			r.indexMarker = marker
		}
	}
}

// New creates a Resolver backed by the given loader.
func New(loader SectionLoader, opts ...Option) *Resolver {
	r := &Resolver{
		loader:      loader,
		indexMarker: DefaultIndexMarker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveBook finds the book enclosing the page: the innermost section,
// from the page's ancestors through the page's own path, that is flagged as
// a book root. The candidates are scanned outermost first and the last
// match is kept, so a book nested inside another book wins for its own
// pages. Returns nil when no candidate is book-flagged.
func (r *Resolver) ResolveBook(page *model.Page) *model.Section {
	if page == nil {
		return nil
	}

	candidates := make([]string, 0, len(page.Ancestors)+1)
	candidates = append(candidates, page.Ancestors...)
	candidates = append(candidates, page.Path)

	var book *model.Section
	for _, path := range candidates {
		if !strings.HasSuffix(path, r.indexMarker) {
			continue
		}
		section := r.loader.Section(path)
		if section != nil && section.Attrs.Book {
			book = section
		}
	}
	return book
}

// Chapters loads the book's direct subsections and returns them sorted
// ascending by Order. Subsection paths that do not resolve are skipped.
// Returns nil for a nil book or a book without subsections.
func (r *Resolver) Chapters(book *model.Section) []*model.Section {
	if book == nil || len(book.Subsections) == 0 {
		return nil
	}

	chapters := make([]*model.Section, 0, len(book.Subsections))
	for _, path := range book.Subsections {
		if chapter := r.loader.Section(path); chapter != nil {
			chapters = append(chapters, chapter)
		}
	}
	if len(chapters) == 0 {
		return nil
	}

	model.SortSectionsByOrder(chapters)
	return chapters
}

// Kind distinguishes the origin of a flattened reading-order entry.
type Kind int

const (
	// KindBook is the book root itself, always at index 0.
	KindBook Kind = iota
	// KindChapter is a direct subsection of the book.
	KindChapter
	// KindPage is a page belonging to a chapter.
	KindPage
)

// FlatPage is one position in the linear reading order.
type FlatPage struct {
	Path  string
	Title string
	Kind  Kind
}

// Flatten builds the linear reading order: the book root first, then each
// chapter followed by that chapter's own pages sorted ascending by Order.
// It returns the sequence and the zero-based index of currentPath within
// it, or -1 when the current page never appears. Matching is by path only.
func Flatten(book *model.Section, chapters []*model.Section, currentPath string) ([]FlatPage, int) {
	if book == nil {
		return nil, -1
	}

	flat := []FlatPage{{Path: book.Path, Title: book.Title, Kind: KindBook}}
	index := -1
	if book.Path == currentPath {
		index = 0
	}

	for _, chapter := range chapters {
		flat = append(flat, FlatPage{Path: chapter.Path, Title: chapter.Title, Kind: KindChapter})
		if chapter.Path == currentPath {
			index = len(flat) - 1
		}

		if len(chapter.Pages) == 0 {
			continue
		}
		pages := make([]*model.Page, len(chapter.Pages))
		copy(pages, chapter.Pages)
		model.SortPagesByOrder(pages)

		for _, page := range pages {
			flat = append(flat, FlatPage{Path: page.Path, Title: page.Title, Kind: KindPage})
			if page.Path == currentPath {
				index = len(flat) - 1
			}
		}
	}

	return flat, index
}

// PrevNext returns the neighbors of the entry at index in the flattened
// reading order. Either neighbor is nil at a boundary; both are nil when
// index is -1 (current page absent from the sequence). There is no
// wraparound.
func PrevNext(flat []FlatPage, index int) (prev, next *FlatPage) {
	if index < 0 || index >= len(flat) {
		return nil, nil
	}
	if index >= 1 {
		prev = &flat[index-1]
	}
	if index < len(flat)-1 {
		next = &flat[index+1]
	}
	return prev, next
}

// Navigation is the complete navigation state for one page render.
type Navigation struct {
	// Book is the enclosing book root, or nil when the page is not inside
	// a book.
	Book *model.Section

	// Chapters are the book's direct subsections in reading order.
	Chapters []*model.Section

	// Flat is the linearized reading order, book root first.
	Flat []FlatPage

	// Index is the current page's position in Flat, or -1.
	Index int

	// Prev and Next are the current page's neighbors in Flat, either may
	// be nil.
	Prev *FlatPage
	Next *FlatPage
}

// Navigate resolves the book, chapters, flattened order and neighbors for
// the page in one call. The zero-valued Navigation (nil book, empty flat
// list, index -1) is returned for pages outside any book.
func (r *Resolver) Navigate(page *model.Page) Navigation {
	nav := Navigation{Index: -1}

	nav.Book = r.ResolveBook(page)
	if nav.Book == nil {
		return nav
	}

	nav.Chapters = r.Chapters(nav.Book)
	nav.Flat, nav.Index = Flatten(nav.Book, nav.Chapters, page.Path)
	nav.Prev, nav.Next = PrevNext(nav.Flat, nav.Index)
	return nav
}
