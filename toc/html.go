package toc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// heading is one h1–h6 element found in document order.
type heading struct {
	level int
	id    string
	title string
}

// FromHTML derives a table of contents from pre-rendered page content by
// collecting the document's h1–h6 elements in order and nesting them by
// level. Existing id attributes are kept; headings without one get a
// generated anchor, with duplicates disambiguated per document.
func FromHTML(r io.Reader) ([]*Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}

	var headings []heading
	collectHeadings(doc, &headings)

	anchors := newAnchorSet()
	for i := range headings {
		if headings[i].id == "" {
			headings[i].id = anchors.claim(Anchor(headings[i].title))
		} else {
			anchors.claim(headings[i].id)
		}
	}

	return nest(headings), nil
}

// collectHeadings walks the parsed document appending each heading element
// it encounters, in document order.
func collectHeadings(n *html.Node, out *[]heading) {
	if n.Type == html.ElementNode {
		if level := headingLevel(n.Data); level > 0 {
			*out = append(*out, heading{
				level: level,
				id:    attr(n, "id"),
				title: text(n),
			})
			// Headings do not nest inside each other.
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectHeadings(c, out)
	}
}

// nest builds the entry tree from the flat heading sequence. A heading
// becomes a child of the nearest preceding heading with a smaller level;
// skipped levels (h1 followed by h3) nest one step, not two.
func nest(headings []heading) []*Entry {
	var root []*Entry

	type frame struct {
		entry *Entry
		level int
	}
	var stack []frame

	for _, h := range headings {
		e := &Entry{ID: h.id, Title: h.title}

		for len(stack) > 0 && stack[len(stack)-1].level >= h.level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			root = append(root, e)
		} else {
			parent := stack[len(stack)-1].entry
			parent.Children = append(parent.Children, e)
		}

		stack = append(stack, frame{entry: e, level: h.level})
	}

	return root
}

// headingLevel returns 1-6 for h1-h6 element names, 0 otherwise.
func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

// attr returns the value of an attribute on a node, or empty string.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// text extracts the trimmed text content of a node and its children.
func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return strings.TrimSpace(b.String())
}
