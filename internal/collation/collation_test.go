package collation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnglishTitles(t *testing.T) {
	c := English()
	titles := c.SectionTitles()
	require.Len(t, titles, 27)
	assert.Equal(t, "A", titles[0])
	assert.Equal(t, "Z", titles[25])
	assert.Equal(t, OtherTitle, titles[26])
	assert.Equal(t, titles, c.SectionIndexTitles())

	titles[0] = "mutated"
	assert.Equal(t, "A", c.SectionTitles()[0])
}

func TestEnglishSection(t *testing.T) {
	c := English()
	titles := c.SectionTitles()

	tests := map[string]string{
		"alice":   "A",
		"Bob":     "B",
		"Émile":   "E",
		"zoë":     "Z",
		"Ørjan":   "O",
		"øystein": "O",
		"Æsir":    "A",
		"Łukasz":  "L",
		"Đorđe":   "D",
		"Ştefan":  "S",
		"Þóra":    OtherTitle,
		"42 Club": OtherTitle,
		"":        OtherTitle,
		"Ωmega":   OtherTitle,
		"Юлия":    OtherTitle,
	}
	for name, want := range tests {
		assert.Equal(t, want, titles[c.Section(name)], name)
	}
}

func TestEnglishCompareIgnoresCaseFirst(t *testing.T) {
	c := English()
	names := []string{"Charlie", "bob", "Alice", "alan"}
	sort.SliceStable(names, func(i, j int) bool {
		return c.Compare(names[i], names[j]) < 0
	})
	assert.Equal(t, []string{"alan", "Alice", "bob", "Charlie"}, names)
	assert.Equal(t, 0, c.Compare("same", "same"))
}
