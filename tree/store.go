package tree

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/booknav/model"
)

// Store is an in-memory content tree keyed by section path. It implements
// resolver.SectionLoader. A Store is safe for concurrent reads once fully
// built; it must not be mutated during renders.
type Store struct {
	sections map[string]*model.Section
}

// New creates a store holding the given sections.
func New(sections ...*model.Section) *Store {
	s := &Store{sections: make(map[string]*model.Section, len(sections))}
	for _, section := range sections {
		s.Add(section)
	}
	return s
}

// Add registers a section under its normalized path. A section with the
// same path replaces the earlier one.
func (s *Store) Add(section *model.Section) {
	if section == nil || section.Path == "" {
		return
	}
	s.sections[NormalizePath(section.Path)] = section
}

// Section returns the section stored under the path, or nil when the path
// does not resolve.
func (s *Store) Section(p string) *model.Section {
	return s.sections[NormalizePath(p)]
}

// Page finds a page by path across all stored sections, or nil. Sections
// themselves are matched through their page view, so a section path also
// resolves.
func (s *Store) Page(p string) *model.Page {
	want := NormalizePath(p)
	if section := s.sections[want]; section != nil {
		return section.AsPage()
	}
	for _, section := range s.sections {
		for _, page := range section.Pages {
			if NormalizePath(page.Path) == want {
				return page
			}
		}
	}
	return nil
}

// Len returns the number of stored sections.
func (s *Store) Len() int {
	return len(s.sections)
}

// NormalizePath canonicalizes a content path for identity comparison:
// slash-separated, cleaned, without a leading "./" or "/", and in Unicode
// NFC so provider spelling differences do not break path equality.
func NormalizePath(p string) string {
	p = norm.NFC.String(strings.ReplaceAll(p, "\\", "/"))
	p = path.Clean(p)
	p = strings.TrimPrefix(p, "/")
	if p == "." {
		return ""
	}
	return p
}
