package models

// Bundle is the top-level shape of contacts.json
type Bundle struct {
	Contacts []ContactEntry `json:"contacts"`
}

// ContactEntry is one contact as stored in the bundle
type ContactEntry struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Address   Address `json:"address"`
	Emergency string  `json:"emergency"`
}

// Address is the nested address object of a bundle entry. State holds the full name.
type Address struct {
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
}

// Contact copies the entry field by field into a new contact
func (e ContactEntry) Contact() Contact {
	c := NewContact()
	c = c.With(FieldFirstName, e.FirstName)
	c = c.With(FieldLastName, e.LastName)
	c = c.With(FieldPhone, e.Phone)
	c = c.With(FieldEmail, e.Email)
	c = c.With(FieldStreet, e.Address.Street)
	c = c.With(FieldApartment, e.Address.Apartment)
	c = c.With(FieldCity, e.Address.City)
	c = c.With(FieldState, e.Address.State)
	c = c.With(FieldZipcode, e.Address.Zipcode)
	c = c.With(FieldEmergency, e.Emergency)
	return c
}
