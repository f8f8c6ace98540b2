package models

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Contact is an immutable set of field values keyed by a stable ID.
//
// A field that was never written is absent; reads of an absent field return "".
// Edits go through With, which returns a new Contact and leaves the receiver untouched.
type Contact struct {
	id     string
	values map[Field]string
}

// NewContact creates an empty contact with a fresh ID
func NewContact() Contact {
	return Contact{id: uuid.NewString()}
}

// ID returns the identifier assigned at creation
func (c Contact) ID() string {
	return c.id
}

// Value returns the field value, or "" when the field is absent
func (c Contact) Value(field Field) string {
	return c.values[field]
}

// Lookup returns the field value and whether it has been set
func (c Contact) Lookup(field Field) (string, bool) {
	value, ok := c.values[field]
	return value, ok
}

// With returns a copy of the contact with one field replaced
func (c Contact) With(field Field, value string) Contact {
	values := make(map[Field]string, len(c.values)+1)
	for k, v := range c.values {
		values[k] = v
	}
	values[field] = value
	return Contact{id: c.id, values: values}
}

// Without returns a copy of the contact with the field unset
func (c Contact) Without(field Field) Contact {
	values := make(map[Field]string, len(c.values))
	for k, v := range c.values {
		if k != field {
			values[k] = v
		}
	}
	return Contact{id: c.id, values: values}
}

// IsEmpty reports whether every field is absent or empty
func (c Contact) IsEmpty() bool {
	for _, value := range c.values {
		if value != "" {
			return false
		}
	}
	return true
}

// CollationString is the "first last" name used for sorting and sectioning
func (c Contact) CollationString() string {
	return strings.TrimSpace(c.Value(FieldFirstName) + " " + c.Value(FieldLastName))
}

// DisplayText is the text shown for the contact in a list
func (c Contact) DisplayText() string {
	return c.CollationString()
}

// SearchableStrings returns the lowercase whitespace-separated tokens of every field value
func (c Contact) SearchableStrings() map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, value := range c.values {
		for _, token := range strings.Fields(strings.ToLower(value)) {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

// IsEmergencyContact reports whether the emergency flag holds a truthy string
func (c Contact) IsEmergencyContact() bool {
	return ParseBool(c.Value(FieldEmergency))
}

// DebugString lists every field with its value and validity
func (c Contact) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id: %s\n", c.id)
	fmt.Fprintf(&b, "isEmpty: %t\n", c.IsEmpty())
	for _, field := range AllFields() {
		value := c.Value(field)
		if field == FieldEmergency {
			fmt.Fprintf(&b, "%s: %s\n", field.Label(), value)
			continue
		}
		fmt.Fprintf(&b, "%s: %s, isValid: %t\n", field.Label(), value, field.IsValid(value))
	}
	return b.String()
}

// ParseBool converts a flag string the way the emergency toggle stores it.
// Leading whitespace, one sign and leading zeros are skipped; the value is true
// when the next character is Y, y, T, t or a digit 1-9. Anything after that is ignored.
func ParseBool(value string) bool {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return false
	}
	switch c := s[0]; {
	case c == 'Y', c == 'y', c == 'T', c == 't':
		return true
	case c >= '1' && c <= '9':
		return true
	}
	return false
}
