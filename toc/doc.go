// Package toc models the in-page table of contents: the heading outline of
// a single page's rendered content.
//
// The outline is a recursive tree of [Entry] values, at most [MaxDepth]
// levels deep. The depth limit comes from the source format's heading
// levels (h1 through h6); deeper nodes are unreachable by construction,
// not an error condition.
//
// Outlines normally arrive pre-built from the content system. When only the
// rendered HTML is available, [FromHTML] derives the outline from the
// document's heading elements, honoring existing id attributes and
// generating anchor ids for headings without one.
package toc
