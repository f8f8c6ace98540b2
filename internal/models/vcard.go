package models

import "strings"

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)

// VCard renders the contact as a vCard 3.0 card. Empty fields are left out,
// and the state is written as its postal abbreviation when it is a known state.
func VCard(c Contact) string {
	esc := vcardEscaper.Replace
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + esc(c.Value(FieldLastName)) + ";" + esc(c.Value(FieldFirstName)) + ";;;",
		"FN:" + esc(c.DisplayText()),
	}
	if phone := c.Value(FieldPhone); phone != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+esc(phone))
	}
	if email := c.Value(FieldEmail); email != "" {
		lines = append(lines, "EMAIL:"+esc(email))
	}

	region := c.Value(FieldState)
	if state, ok := ParseState(region); ok {
		region = state.Abbreviation()
	}
	adr := []string{
		"",
		esc(c.Value(FieldApartment)),
		esc(c.Value(FieldStreet)),
		esc(c.Value(FieldCity)),
		esc(region),
		esc(c.Value(FieldZipcode)),
		"",
	}
	if strings.Join(adr, "") != "" {
		lines = append(lines, "ADR;TYPE=HOME:"+strings.Join(adr, ";"))
	}
	if c.IsEmergencyContact() {
		lines = append(lines, "CATEGORIES:Emergency")
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n") + "\n"
}
