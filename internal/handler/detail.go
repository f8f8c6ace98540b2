package handler

import (
	"strconv"

	"contacts-book/internal/models"
)

// DetailHandler backs the contact form. Each edit replaces the held contact
// with an updated copy; the caller asks Savable after every edit.
type DetailHandler struct {
	contact models.Contact
	options []models.StateOption
}

// NewDetailHandler starts editing c. Pass models.NewContact() for a new contact.
func NewDetailHandler(c models.Contact) *DetailHandler {
	return &DetailHandler{
		contact: c,
		options: models.StateOptions(),
	}
}

// Contact returns the contact as currently edited
func (h *DetailHandler) Contact() models.Contact {
	return h.contact
}

// Update writes a field value and reports whether the contact can now be saved
func (h *DetailHandler) Update(field models.Field, value string) bool {
	h.contact = h.contact.With(field, value)
	return h.Savable()
}

// SetEmergency stores the toggle as "true" or "false"
func (h *DetailHandler) SetEmergency(on bool) bool {
	return h.Update(models.FieldEmergency, strconv.FormatBool(on))
}

// StateOptions returns the state picker rows
func (h *DetailHandler) StateOptions() []models.StateOption {
	return h.options
}

// SelectState picks a row of the state picker. Row 0 clears the state.
// An out-of-range row leaves the contact unchanged.
func (h *DetailHandler) SelectState(index int) bool {
	switch {
	case index == 0:
		h.contact = h.contact.Without(models.FieldState)
	case index > 0 && index < len(h.options):
		h.contact = h.contact.With(models.FieldState, h.options[index].Name)
	}
	return h.Savable()
}

// InputText returns the text shown in a field; the state shows as its abbreviation
func (h *DetailHandler) InputText(field models.Field) string {
	if field == models.FieldState {
		state, ok := models.ParseState(h.contact.Value(models.FieldState))
		if !ok {
			return ""
		}
		return state.Abbreviation()
	}
	return h.contact.Value(field)
}

// StateOptionIndex returns the picker row of the current state, 0 when unset or unknown
func (h *DetailHandler) StateOptionIndex() int {
	return models.StateOptionIndex(h.contact.Value(models.FieldState))
}

// EmergencyFlag returns the toggle position
func (h *DetailHandler) EmergencyFlag() bool {
	return h.contact.IsEmergencyContact()
}

// CanRemove reports whether the contact has anything worth deleting
func (h *DetailHandler) CanRemove() bool {
	return !h.contact.IsEmpty()
}

func (h *DetailHandler) Savable() bool {
	return models.IsSavable(h.contact)
}

func (h *DetailHandler) InvalidFields() []models.Field {
	return models.InvalidFields(h.contact)
}

// DebugString dumps the contact being edited, every field with its validity
func (h *DetailHandler) DebugString() string {
	return h.contact.DebugString()
}
