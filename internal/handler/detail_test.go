package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contacts-book/internal/models"
)

func TestDetailHandlerNewContact(t *testing.T) {
	h := NewDetailHandler(models.NewContact())
	id := h.Contact().ID()

	assert.False(t, h.Savable())
	assert.False(t, h.CanRemove())
	assert.Equal(t, 0, h.StateOptionIndex())
	assert.False(t, h.EmergencyFlag())

	assert.False(t, h.Update(models.FieldFirstName, "A"))
	assert.Equal(t, []models.Field{models.FieldFirstName}, h.InvalidFields())
	assert.True(t, h.Update(models.FieldFirstName, "Al"))
	assert.True(t, h.CanRemove())
	assert.Equal(t, id, h.Contact().ID())

	assert.False(t, h.Update(models.FieldZipcode, "123"))
	assert.True(t, h.Update(models.FieldZipcode, "02134"))
}

func TestDetailHandlerEditDoesNotTouchOriginal(t *testing.T) {
	original := models.NewContact().With(models.FieldFirstName, "Alice")
	h := NewDetailHandler(original)

	h.Update(models.FieldFirstName, "Alicia")
	assert.Equal(t, "Alice", original.Value(models.FieldFirstName))
	assert.Equal(t, "Alicia", h.InputText(models.FieldFirstName))
}

func TestDetailHandlerState(t *testing.T) {
	h := NewDetailHandler(models.NewContact().With(models.FieldFirstName, "Al"))
	require.Len(t, h.StateOptions(), 51)

	texas := models.StateOptionIndex("Texas")
	assert.True(t, h.SelectState(texas))
	assert.Equal(t, "Texas", h.Contact().Value(models.FieldState))
	assert.Equal(t, "TX", h.InputText(models.FieldState))
	assert.Equal(t, texas, h.StateOptionIndex())

	assert.True(t, h.SelectState(999))
	assert.Equal(t, "Texas", h.Contact().Value(models.FieldState), "out-of-range rows are ignored")

	// The "--" row unsets the state rather than storing "--", which would fail
	// validation and leave the contact unsavable.
	assert.True(t, h.SelectState(0))
	_, ok := h.Contact().Lookup(models.FieldState)
	assert.False(t, ok)
	assert.Equal(t, "", h.InputText(models.FieldState))

	assert.False(t, h.Update(models.FieldState, "TX"))
	assert.Equal(t, "", h.InputText(models.FieldState))
	assert.Equal(t, 0, h.StateOptionIndex())
}

func TestDetailHandlerEmergency(t *testing.T) {
	h := NewDetailHandler(models.NewContact())

	assert.True(t, h.SetEmergency(true))
	assert.True(t, h.EmergencyFlag())
	assert.Equal(t, "true", h.Contact().Value(models.FieldEmergency))

	assert.True(t, h.SetEmergency(false), "\"false\" is a non-empty value")
	assert.False(t, h.EmergencyFlag())
}

func TestDetailHandlerDebugString(t *testing.T) {
	h := NewDetailHandler(models.NewContact())
	h.Update(models.FieldFirstName, "Ann")
	h.Update(models.FieldZipcode, "12")

	out := h.DebugString()
	assert.Contains(t, out, "id: "+h.Contact().ID())
	assert.Contains(t, out, "isEmpty: false")
	assert.Contains(t, out, "First Name: Ann, isValid: true")
	assert.Contains(t, out, "Zipcode: 12, isValid: false")
	assert.Equal(t, h.Contact().DebugString(), out, "reflects edits, not the original contact")
}
