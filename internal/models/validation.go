package models

// IsSavable reports whether a contact may be saved.
//
// An empty contact is never savable. Otherwise only fields that have been set are
// checked, so a blank optional field does not block saving but a bad value does.
func IsSavable(c Contact) bool {
	if c.IsEmpty() {
		return false
	}
	return len(InvalidFields(c)) == 0
}

// InvalidFields returns the set fields whose value fails validation, in form order
func InvalidFields(c Contact) []Field {
	var invalid []Field
	for _, section := range sections {
		for _, field := range section {
			value, ok := c.Lookup(field)
			if !ok {
				continue
			}
			if !field.IsValid(value) {
				invalid = append(invalid, field)
			}
		}
	}
	return invalid
}
