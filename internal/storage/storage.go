package storage

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"contacts-book/internal/collation"
	"contacts-book/internal/models"
	"contacts-book/internal/search"
)

// headerThreshold is the contact count at or below which section headers are hidden
const headerThreshold = 5

// Store owns the contact list and its alphabetical sections.
//
// Every mutation re-sorts, re-sections and re-filters before returning, so reads
// never see a half-applied change. A Store has a single owner and is not safe for
// concurrent use.
type Store struct {
	collator collation.Collator
	log      zerolog.Logger
	contacts []models.Contact
	sections []models.Section
	filtered []models.Section
	query    string
}

// NewStore creates an empty store
func NewStore(collator collation.Collator, logger zerolog.Logger) *Store {
	if collator == nil {
		collator = collation.English()
	}
	return &Store{
		collator: collator,
		log:      logger.With().Str("component", "store").Logger(),
	}
}

// Seed loads the initial contacts. A load error is logged and whatever the
// source returned before failing is kept. It returns the number of contacts added.
func (s *Store) Seed(ctx context.Context, source Source) int {
	contacts, err := source.Load(ctx)
	for _, c := range contacts {
		s.insert(c)
	}
	s.resection()

	if err != nil {
		s.log.Error().Err(err).Int("loaded", len(contacts)).Msg("Failed to load contacts")
	} else {
		s.log.Info().Int("loaded", len(contacts)).Msg("Loaded contacts")
	}
	return len(contacts)
}

// Add inserts a new contact or replaces the one with the same ID
func (s *Store) Add(c models.Contact) {
	s.insert(c)
	s.resection()
}

// Remove deletes the contact with the same ID, if there is one
func (s *Store) Remove(c models.Contact) {
	for i, existing := range s.contacts {
		if existing.ID() == c.ID() {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			s.resection()
			return
		}
	}
}

// Get looks a contact up by ID
func (s *Store) Get(id string) (models.Contact, bool) {
	for _, c := range s.contacts {
		if c.ID() == id {
			return c, true
		}
	}
	return models.Contact{}, false
}

// Len returns the number of contacts
func (s *Store) Len() int {
	return len(s.contacts)
}

// Contacts returns all contacts in insertion order
func (s *Store) Contacts() []models.Contact {
	contacts := make([]models.Contact, len(s.contacts))
	copy(contacts, s.contacts)
	return contacts
}

// ApplyFilter sets the search query used for the filtered view
func (s *Store) ApplyFilter(query string) {
	s.query = query
	s.refilter()
}

// Query returns the current search query
func (s *Store) Query() string {
	return s.query
}

// IsFiltering reports whether the current query has any terms
func (s *Store) IsFiltering() bool {
	return strings.TrimSpace(s.query) != ""
}

// View returns the filtered or the full sectioning
func (s *Store) View(filtered bool) View {
	sections := s.sections
	if filtered {
		sections = s.filtered
	}
	return View{sections: sections, total: len(s.contacts)}
}

// SectionIndexTitles returns the jump-bar titles, independent of the contacts held
func (s *Store) SectionIndexTitles() []string {
	return s.collator.SectionIndexTitles()
}

func (s *Store) insert(c models.Contact) {
	for i, existing := range s.contacts {
		if existing.ID() == c.ID() {
			s.contacts[i] = c
			return
		}
	}
	s.contacts = append(s.contacts, c)
}

func (s *Store) resection() {
	sorted := s.Contacts()
	sort.SliceStable(sorted, func(i, j int) bool {
		return s.collator.Compare(sorted[i].CollationString(), sorted[j].CollationString()) < 0
	})

	titles := s.collator.SectionTitles()
	buckets := make([][]models.Contact, len(titles))
	for _, c := range sorted {
		index := s.collator.Section(c.CollationString())
		if index < 0 || index >= len(buckets) {
			index = len(buckets) - 1
		}
		buckets[index] = append(buckets[index], c)
	}

	s.sections = s.sections[:0:0]
	for i, title := range titles {
		if len(buckets[i]) == 0 {
			continue
		}
		s.sections = append(s.sections, models.Section{Title: title, Contacts: buckets[i]})
	}
	s.refilter()
}

func (s *Store) refilter() {
	s.filtered = search.Filter(s.sections, search.Terms(s.query))
}

// View is a read-only snapshot of a sectioning. Out-of-range lookups return zero values.
type View struct {
	sections []models.Section
	total    int
}

// Sections returns the sections of the view
func (v View) Sections() []models.Section {
	return append([]models.Section(nil), v.sections...)
}

// SectionCount returns the number of non-empty sections
func (v View) SectionCount() int {
	return len(v.sections)
}

// RowCount returns the number of contacts in a section
func (v View) RowCount(section int) int {
	if section < 0 || section >= len(v.sections) {
		return 0
	}
	return len(v.sections[section].Contacts)
}

// HeaderTitle returns the section title. Short lists get no headers.
func (v View) HeaderTitle(section int) (string, bool) {
	if v.total <= headerThreshold {
		return "", false
	}
	if section < 0 || section >= len(v.sections) {
		return "", false
	}
	return v.sections[section].Title, true
}

// SectionForIndexTitle returns the section with the given title, or fallback
func (v View) SectionForIndexTitle(title string, fallback int) int {
	for i, section := range v.sections {
		if section.Title == title {
			return i
		}
	}
	return fallback
}

// ContactAt returns the contact at a section and row
func (v View) ContactAt(section, row int) (models.Contact, bool) {
	if section < 0 || section >= len(v.sections) {
		return models.Contact{}, false
	}
	contacts := v.sections[section].Contacts
	if row < 0 || row >= len(contacts) {
		return models.Contact{}, false
	}
	return contacts[row], true
}
