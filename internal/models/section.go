package models

// Section is a titled, non-empty group of contacts in list order
type Section struct {
	Title    string
	Contacts []Contact
}
