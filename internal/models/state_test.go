package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateLookups(t *testing.T) {
	state, ok := ParseState("New Hampshire")
	require.True(t, ok)
	assert.Equal(t, NewHampshire, state)
	assert.Equal(t, "NH", state.Abbreviation())

	state, ok = StateByAbbreviation("WY")
	require.True(t, ok)
	assert.Equal(t, "Wyoming", state.Name())

	_, ok = ParseState("Puerto Rico")
	assert.False(t, ok)

	assert.Equal(t, "", State(-1).Name())
	assert.Len(t, AllStates(), 50)
}

func TestStateOptions(t *testing.T) {
	options := StateOptions()
	require.Len(t, options, 51)
	assert.Equal(t, StateOption{Name: "--", Abbreviation: ""}, options[0])
	assert.Equal(t, StateOption{Name: "Alabama", Abbreviation: "AL"}, options[1])
	assert.Equal(t, StateOption{Name: "Wyoming", Abbreviation: "WY"}, options[50])

	assert.Equal(t, 0, StateOptionIndex(""))
	assert.Equal(t, 0, StateOptionIndex("Atlantis"))
	assert.Equal(t, 1, StateOptionIndex("Alabama"))
	assert.Equal(t, "Texas", options[StateOptionIndex("Texas")].Name)
}
