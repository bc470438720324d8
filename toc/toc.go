package toc

// MaxDepth is the maximum nesting depth of a table of contents, bounded by
// the six HTML heading levels.
const MaxDepth = 6

// Entry is one heading in a page's table of contents.
type Entry struct {
	// ID is the anchor id of the heading within the rendered page.
	ID string `json:"id"`

	// Title is the heading text.
	Title string `json:"title"`

	// Children holds nested sub-headings, if any.
	Children []*Entry `json:"children,omitempty"`
}

// Clamp returns the entries pruned to at most depth levels. A depth of 1
// keeps only the top-level entries; depths above MaxDepth are treated as
// MaxDepth. The input is not modified; entries whose children survive
// unchanged are still copied so callers can rely on the original tree
// staying intact.
func Clamp(entries []*Entry, depth int) []*Entry {
	if depth > MaxDepth {
		depth = MaxDepth
	}
	if depth < 1 || len(entries) == 0 {
		return nil
	}

	clamped := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		clamped = append(clamped, &Entry{
			ID:       e.ID,
			Title:    e.Title,
			Children: Clamp(e.Children, depth-1),
		})
	}
	return clamped
}

// Depth returns the nesting depth of the outline: 0 for an empty outline,
// 1 for a flat list, and so on.
func Depth(entries []*Entry) int {
	max := 0
	for _, e := range entries {
		if d := Depth(e.Children); d > max {
			max = d
		}
	}
	if len(entries) == 0 {
		return 0
	}
	return max + 1
}

// Walk visits every entry depth-first in document order. The visit function
// receives the entry and its 1-based level. Returning false stops the walk.
func Walk(entries []*Entry, visit func(e *Entry, level int) bool) {
	walk(entries, 1, visit)
}

func walk(entries []*Entry, level int, visit func(e *Entry, level int) bool) bool {
	for _, e := range entries {
		if !visit(e, level) {
			return false
		}
		if !walk(e.Children, level+1, visit) {
			return false
		}
	}
	return true
}

// Count returns the total number of entries in the outline, at every level.
func Count(entries []*Entry) int {
	n := 0
	Walk(entries, func(*Entry, int) bool {
		n++
		return true
	})
	return n
}
