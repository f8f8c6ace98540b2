package models

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field identifies one editable value of a contact
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldPhone
	FieldEmail
	FieldStreet
	FieldApartment
	FieldCity
	FieldState
	FieldZipcode
	FieldEmergency
)

// InputMode is the keyboard a field prefers when it is edited
type InputMode string

const (
	InputModeText    InputMode = "text"
	InputModeNumeric InputMode = "numeric"
	InputModePhone   InputMode = "phone"
	InputModeNone    InputMode = "none"
)

type fieldInfo struct {
	key       string
	label     string
	inputMode InputMode
	validate  func(string) bool
}

var fieldTable = [...]fieldInfo{
	FieldFirstName: {"firstName", "First Name", InputModeText, minLength(2)},
	FieldLastName:  {"lastName", "Last Name", InputModeText, minLength(2)},
	FieldPhone:     {"phone", "Phone", InputModePhone, validPhone},
	FieldEmail:     {"email", "Email", InputModeText, validEmail},
	FieldStreet:    {"street", "Street", InputModeText, validStreet},
	FieldApartment: {"apartment", "Apartment", InputModeText, validApartment},
	FieldCity:      {"city", "City", InputModeText, validCity},
	FieldState:     {"state", "State", InputModeNone, validState},
	FieldZipcode:   {"zipcode", "Zipcode", InputModeNumeric, validZipcode},
	FieldEmergency: {"emergency", "Emergency Contact", InputModeNone, func(string) bool { return true }},
}

// sections is the visual grouping of the detail form, also the order fields are validated in
var sections = [][]Field{
	{FieldFirstName, FieldLastName},
	{FieldPhone, FieldEmail},
	{FieldStreet, FieldApartment, FieldCity, FieldState, FieldZipcode},
	{FieldEmergency},
}

// AllFields returns every field in declaration order
func AllFields() []Field {
	fields := make([]Field, len(fieldTable))
	for i := range fieldTable {
		fields[i] = Field(i)
	}
	return fields
}

// Sections returns the field groups in form order
func Sections() [][]Field {
	out := make([][]Field, len(sections))
	for i, section := range sections {
		out[i] = append([]Field(nil), section...)
	}
	return out
}

// ParseField looks a field up by its key (e.g. "firstName")
func ParseField(key string) (Field, bool) {
	for i, info := range fieldTable {
		if info.key == key {
			return Field(i), true
		}
	}
	return 0, false
}

func (f Field) known() bool {
	return f >= 0 && int(f) < len(fieldTable)
}

// Key returns the stable identifier used in the bundle and on the command line
func (f Field) Key() string {
	if !f.known() {
		return ""
	}
	return fieldTable[f].key
}

// Label returns the display label of the field
func (f Field) Label() string {
	if !f.known() {
		return ""
	}
	return fieldTable[f].label
}

// String implements fmt.Stringer
func (f Field) String() string {
	return f.Key()
}

// InputMode returns the preferred keyboard for the field
func (f Field) InputMode() InputMode {
	if !f.known() {
		return InputModeNone
	}
	return fieldTable[f].inputMode
}

// Section returns the group the field belongs to
func (f Field) Section() []Field {
	for _, section := range sections {
		for _, member := range section {
			if member == f {
				return append([]Field(nil), section...)
			}
		}
	}
	return nil
}

// IsValid reports whether value satisfies the field's rule. Unknown fields are never valid.
func (f Field) IsValid(value string) bool {
	if !f.known() {
		return false
	}
	return fieldTable[f].validate(value)
}

func minLength(n int) func(string) bool {
	return func(value string) bool {
		return length(value) >= n
	}
}

func validPhone(value string) bool {
	return length(value) >= 7 && isInt(value)
}

func validEmail(value string) bool {
	return strings.Contains(value, "@")
}

func validStreet(value string) bool {
	return length(value) >= 3 && onlyAlphanumerics(removeSpaces(value))
}

func validApartment(value string) bool {
	return length(value) >= 1 && onlyAlphanumerics(removeSpaces(value))
}

func validCity(value string) bool {
	return length(value) >= 3 && onlyLetters(removeSpaces(value))
}

func validState(value string) bool {
	_, ok := ParseState(value)
	return ok
}

func validZipcode(value string) bool {
	return length(value) == 5 && onlyDigits(value)
}

func length(value string) int {
	return utf8.RuneCountInString(value)
}

func isInt(value string) bool {
	_, err := strconv.ParseInt(value, 10, 64)
	return err == nil
}

// removeSpaces drops U+0020 only; tabs and other whitespace stay and fail the class checks
func removeSpaces(value string) string {
	return strings.ReplaceAll(value, " ", "")
}

func onlyLetters(value string) bool {
	return onlyRunes(value, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsMark(r)
	})
}

func onlyAlphanumerics(value string) bool {
	return onlyRunes(value, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
	})
}

func onlyDigits(value string) bool {
	return onlyRunes(value, unicode.IsDigit)
}

func onlyRunes(value string, allowed func(rune) bool) bool {
	for _, r := range value {
		if !allowed(r) {
			return false
		}
	}
	return true
}
