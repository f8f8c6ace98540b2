// Package collation decides how contact names are ordered and which
// alphabetical section each one is listed under.
package collation

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders collation strings and buckets them into titled sections.
// Implementations need not be safe for concurrent use.
type Collator interface {
	// SectionTitles returns the bucket titles in list order.
	SectionTitles() []string
	// SectionIndexTitles returns the titles shown in a jump-to-letter bar.
	SectionIndexTitles() []string
	// Section returns the index into SectionTitles for s.
	Section(s string) int
	// Compare returns -1, 0 or +1 like strings.Compare.
	Compare(a, b string) int
}

// OtherTitle is the catch-all section for names that do not start with a letter A-Z
const OtherTitle = "#"

type alphabetic struct {
	collator *collate.Collator
	// loose compares at primary strength, ignoring case and diacritics
	loose  *collate.Collator
	titles []string
}

// English returns the default collator: English collation order, sections A-Z plus "#"
func English() Collator {
	return New(language.English)
}

// New returns an A-Z plus "#" collator that orders names by the collation rules of tag
func New(tag language.Tag) Collator {
	titles := make([]string, 0, 27)
	for r := 'A'; r <= 'Z'; r++ {
		titles = append(titles, string(r))
	}
	titles = append(titles, OtherTitle)

	return &alphabetic{
		collator: collate.New(tag),
		loose:    collate.New(tag, collate.Loose),
		titles:   titles,
	}
}

func (a *alphabetic) SectionTitles() []string {
	return append([]string(nil), a.titles...)
}

func (a *alphabetic) SectionIndexTitles() []string {
	return append([]string(nil), a.titles...)
}

// Section buckets a name by where its first letter falls among the titles at
// primary strength, so "Émile" lands in "E" and "Ørjan" in "O". Only Latin
// letters are bucketed; anything else goes to "#".
func (a *alphabetic) Section(s string) int {
	other := len(a.titles) - 1
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.Is(unicode.Latin, r) {
		return other
	}

	first := s[:size]
	for i := other - 1; i >= 0; i-- {
		c := a.loose.CompareString(first, a.titles[i])
		if c < 0 {
			continue
		}
		// letters sorting past "Z", like "Þ", have no title of their own
		if i == other-1 && c > 0 {
			return other
		}
		return i
	}
	return other
}

func (a *alphabetic) Compare(x, y string) int {
	return a.collator.CompareString(x, y)
}
