// Package booknav resolves book-style navigation for documentation sites:
// given a page and an accessor for the surrounding content tree, it finds
// the enclosing book, orders its chapters, linearizes the reading order and
// computes the previous/next neighbors of the page, along with the page's
// in-page table of contents.
//
// Basic usage:
//
//	store := tree.New(sections...)
//	nav, err := booknav.Resolve(page, store)
//	if err != nil {
//	    // handle error
//	}
//	if nav.Book != nil {
//	    // render chapter list, prev/next links, toc…
//	}
//
// With options:
//
//	nav, err := booknav.Resolve(page, store,
//	    booknav.WithIndexMarker("_index.md"),
//	    booknav.WithTocDepth(3))
//
// Every lookup of a missing path degrades to an absent value: a page
// outside any book yields a Navigation with a nil Book and no neighbors,
// never an error. The only errors are input-decoding failures, such as
// unparseable page content when the table of contents has to be derived
// from it.
//
// For finer control, the lower-level resolver, toc and tree packages are
// also available.
package booknav

import (
	"strings"

	"github.com/tsawler/booknav/model"
	"github.com/tsawler/booknav/resolver"
	"github.com/tsawler/booknav/toc"
)

// Navigation is everything a renderer needs to emit the navigation chrome
// for one page: the book, its chapters, the flattened reading order, the
// previous/next neighbors, and the in-page table of contents.
type Navigation struct {
	// Book is the enclosing book-flagged section, nil when the page is not
	// part of a book.
	Book *model.Section

	// Chapters are the book's direct subsections sorted by Order.
	Chapters []*model.Section

	// Flat is the linear reading order with the book root at index 0.
	Flat []resolver.FlatPage

	// Index is the page's position in Flat, -1 when the page does not
	// appear there.
	Index int

	// Prev and Next are the page's neighbors in the reading order. Either
	// is nil at a boundary; both are nil when Index is -1. A nil value
	// means "omit the link".
	Prev *resolver.FlatPage
	Next *resolver.FlatPage

	// Toc is the page's heading outline, clamped to the configured depth.
	Toc []*toc.Entry
}

// Resolve computes the Navigation for one page render. The loader supplies
// sections of the surrounding content tree; the tree package provides a
// ready-made in-memory implementation.
//
// When the page carries no provider-supplied outline, the outline is
// derived from the page's rendered content.
func Resolve(page *model.Page, loader resolver.SectionLoader, opts ...Option) (*Navigation, error) {
	if page == nil {
		return &Navigation{Index: -1}, nil
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	r := resolver.New(loader, resolver.WithIndexMarker(options.indexMarker))
	inner := r.Navigate(page)

	nav := &Navigation{
		Book:     inner.Book,
		Chapters: inner.Chapters,
		Flat:     inner.Flat,
		Index:    inner.Index,
		Prev:     inner.Prev,
		Next:     inner.Next,
	}

	entries := page.Toc
	if entries == nil && page.Content != "" {
		derived, err := toc.FromHTML(strings.NewReader(page.Content))
		if err != nil {
			return nil, err
		}
		entries = derived
	}
	nav.Toc = toc.Clamp(entries, options.tocDepth)

	return nav, nil
}
