package toc

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after canonical decomposition, so
// "Précis" and "Precis" produce the same anchor.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Anchor derives an anchor id from a heading title: diacritics folded,
// lowercased, with runs of non-alphanumeric characters collapsed to single
// hyphens. An empty or fully punctuation title yields "section".
func Anchor(title string) string {
	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	if b.Len() == 0 {
		return "section"
	}
	return b.String()
}

// anchorSet tracks anchors already issued within one document and
// disambiguates duplicates with -1, -2… suffixes, the way static site
// generators number repeated headings.
type anchorSet struct {
	seen map[string]int
}

func newAnchorSet() *anchorSet {
	return &anchorSet{seen: make(map[string]int)}
}

// claim returns a unique form of the anchor and records it.
func (s *anchorSet) claim(anchor string) string {
	n, dup := s.seen[anchor]
	s.seen[anchor] = n + 1
	if !dup {
		return anchor
	}
	// Suffixed forms may themselves collide with explicit ids; claim
	// recursively until a free one is found.
	return s.claim(anchor + "-" + strconv.Itoa(n))
}
