package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"

	"contacts-book/internal/models"
	"contacts-book/internal/storage"
)

var (
	// ErrNotSavable is returned when saving a contact that fails validation
	ErrNotSavable = errors.New("contact is not savable")
	// ErrSharingDisabled is returned by Share when no sharer is configured
	ErrSharingDisabled = errors.New("contact sharing is disabled")
)

// Sharer sends a contact card to someone
type Sharer interface {
	ShareContact(ctx context.Context, phoneNumber, displayName, vcard string) error
}

// Row is one line of the contact list
type Row struct {
	Section   int
	Row       int
	Header    string
	Title     string
	Emergency bool
	Contact   models.Contact
}

type ListHandler struct {
	store  *storage.Store
	sharer Sharer
	log    zerolog.Logger
}

// NewListHandler creates a list handler. sharer may be nil.
func NewListHandler(store *storage.Store, sharer Sharer, logger zerolog.Logger) *ListHandler {
	return &ListHandler{
		store:  store,
		sharer: sharer,
		log:    logger.With().Str("component", "list").Logger(),
	}
}

// Search updates the search text; an empty text shows every contact again
func (h *ListHandler) Search(text string) {
	h.store.ApplyFilter(text)
}

// SearchText returns the text of the active search, as entered
func (h *ListHandler) SearchText() string {
	return h.store.Query()
}

// View returns the filtered sections while a search is active, all sections otherwise
func (h *ListHandler) View() storage.View {
	return h.store.View(h.store.IsFiltering())
}

// IndexTitles returns the jump-to-letter titles
func (h *ListHandler) IndexTitles() []string {
	return h.store.SectionIndexTitles()
}

// Save adds a new contact or replaces an edited one
func (h *ListHandler) Save(c models.Contact) error {
	if !models.IsSavable(c) {
		return fmt.Errorf("%w: invalid fields %v", ErrNotSavable, models.InvalidFields(c))
	}
	h.store.Add(c)
	h.log.Debug().Str("id", c.ID()).Msg("Saved contact")
	return nil
}

// Delete removes the contact from the list. It reports false when no stored
// contact has c's ID, such as a new contact that was never saved.
func (h *ListHandler) Delete(c models.Contact) bool {
	if _, ok := h.store.Get(c.ID()); !ok {
		return false
	}
	h.store.Remove(c)
	h.log.Debug().Str("id", c.ID()).Msg("Deleted contact")
	return true
}

// Rows flattens the current view into display rows
func (h *ListHandler) Rows() []Row {
	view := h.View()
	var rows []Row
	for section := 0; section < view.SectionCount(); section++ {
		header, _ := view.HeaderTitle(section)
		for row := 0; row < view.RowCount(section); row++ {
			c, _ := view.ContactAt(section, row)
			rows = append(rows, Row{
				Section:   section,
				Row:       row,
				Header:    header,
				Title:     c.DisplayText(),
				Emergency: c.IsEmergencyContact(),
				Contact:   c,
			})
		}
	}
	return rows
}

// QRCode renders the contact's vCard as a QR code for the terminal
func (h *ListHandler) QRCode(c models.Contact) (string, error) {
	q, err := qrcode.New(models.VCard(c), qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return q.ToSmallString(false), nil
}

// Share sends the contact card to a phone number
func (h *ListHandler) Share(ctx context.Context, c models.Contact, phoneNumber string) error {
	if h.sharer == nil {
		return ErrSharingDisabled
	}
	if err := h.sharer.ShareContact(ctx, phoneNumber, c.DisplayText(), models.VCard(c)); err != nil {
		return fmt.Errorf("failed to share contact: %w", err)
	}
	h.log.Info().Str("id", c.ID()).Str("phone", phoneNumber).Msg("Shared contact")
	return nil
}
