// Package resolver computes book navigation for a single page render: the
// enclosing book, its ordered chapters, the flattened reading order, and
// the previous/next neighbors of the current page.
//
// The resolver is a pure transformation over a content-tree snapshot. All
// section loading is delegated to a [SectionLoader]; a lookup that fails
// resolves to nil and the navigation degrades to a shorter sequence rather
// than an error. The worst case is a page rendered without chapter
// navigation, never a failed render.
//
// # Reading order
//
// The flattened reading order always starts with the book root, followed by
// each chapter in ascending Order, each immediately followed by its own
// pages in ascending Order:
//
//	book, chapter 1, chapter 1 pages…, chapter 2, chapter 2 pages…
//
// Previous/next are the immediate neighbors of the current page in that
// sequence, with nil at either boundary and no wraparound.
package resolver
