// Package search narrows sectioned contacts down to those matching a query.
package search

import (
	"strings"

	"contacts-book/internal/models"
)

// Terms lowercases and trims the query and splits it on whitespace
func Terms(query string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(query)))
}

// Matches reports whether every term equals one of the contact's searchable tokens.
// Terms are compared as whole tokens: "ali" does not match "alice".
func Matches(c models.Contact, terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	tokens := c.SearchableStrings()
	for _, term := range terms {
		if _, ok := tokens[term]; !ok {
			return false
		}
	}
	return true
}

// Filter keeps the contacts of each section that match all terms and drops sections
// left empty. With no terms the sections are returned as they are.
func Filter(sections []models.Section, terms []string) []models.Section {
	if len(terms) == 0 {
		return sections
	}

	var filtered []models.Section
	for _, section := range sections {
		var contacts []models.Contact
		for _, c := range section.Contacts {
			if Matches(c, terms) {
				contacts = append(contacts, c)
			}
		}
		if len(contacts) == 0 {
			continue
		}
		filtered = append(filtered, models.Section{Title: section.Title, Contacts: contacts})
	}
	return filtered
}
