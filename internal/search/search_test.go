package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts-book/internal/models"
)

func person(first, last string) models.Contact {
	return models.NewContact().With(models.FieldFirstName, first).With(models.FieldLastName, last)
}

func TestTerms(t *testing.T) {
	assert.Equal(t, []string{"alice", "smith"}, Terms("  Alice \t SMITH \n"))
	assert.Empty(t, Terms("   "))
	assert.Empty(t, Terms(""))
}

func TestMatchesWholeTokensOnly(t *testing.T) {
	alice := person("Alice", "Smith")

	assert.False(t, Matches(alice, Terms("ali")))
	assert.True(t, Matches(alice, Terms("alice smith")))
	assert.True(t, Matches(alice, Terms("smith alice")))
	assert.False(t, Matches(alice, Terms("alice jones")))
	assert.True(t, Matches(alice, nil))
}

func TestFilter(t *testing.T) {
	alice := person("Alice", "Smith")
	adam := person("Adam", "Jones")
	bob := person("Bob", "Smith")

	sections := []models.Section{
		{Title: "A", Contacts: []models.Contact{adam, alice}},
		{Title: "B", Contacts: []models.Contact{bob}},
	}

	t.Run("drops emptied sections", func(t *testing.T) {
		got := Filter(sections, Terms("jones"))
		require.Len(t, got, 1)
		assert.Equal(t, "A", got[0].Title)
		require.Len(t, got[0].Contacts, 1)
		assert.Equal(t, adam.ID(), got[0].Contacts[0].ID())
	})

	t.Run("keeps matches across sections", func(t *testing.T) {
		got := Filter(sections, Terms("Smith"))
		require.Len(t, got, 2)
		assert.Equal(t, alice.ID(), got[0].Contacts[0].ID())
		assert.Equal(t, bob.ID(), got[1].Contacts[0].ID())
	})

	t.Run("no terms leaves sections unchanged", func(t *testing.T) {
		assert.Equal(t, sections, Filter(sections, nil))
	})

	t.Run("no match yields no sections", func(t *testing.T) {
		assert.Empty(t, Filter(sections, Terms("zed")))
	})

	t.Run("input is not modified", func(t *testing.T) {
		Filter(sections, Terms("bob"))
		assert.Len(t, sections[0].Contacts, 2)
	})
}
