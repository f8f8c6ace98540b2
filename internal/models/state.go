package models

// State is a US state, identified by its full name
type State int

const (
	Alabama State = iota
	Alaska
	Arizona
	Arkansas
	California
	Colorado
	Connecticut
	Delaware
	Florida
	Georgia
	Hawaii
	Idaho
	Illinois
	Indiana
	Iowa
	Kansas
	Kentucky
	Louisiana
	Maine
	Maryland
	Massachusetts
	Michigan
	Minnesota
	Mississippi
	Missouri
	Montana
	Nebraska
	Nevada
	NewHampshire
	NewJersey
	NewMexico
	NewYork
	NorthCarolina
	NorthDakota
	Ohio
	Oklahoma
	Oregon
	Pennsylvania
	RhodeIsland
	SouthCarolina
	SouthDakota
	Tennessee
	Texas
	Utah
	Vermont
	Virginia
	Washington
	WestVirginia
	Wisconsin
	Wyoming
)

var stateTable = [...]struct {
	name         string
	abbreviation string
}{
	Alabama:       {"Alabama", "AL"},
	Alaska:        {"Alaska", "AK"},
	Arizona:       {"Arizona", "AZ"},
	Arkansas:      {"Arkansas", "AR"},
	California:    {"California", "CA"},
	Colorado:      {"Colorado", "CO"},
	Connecticut:   {"Connecticut", "CT"},
	Delaware:      {"Delaware", "DE"},
	Florida:       {"Florida", "FL"},
	Georgia:       {"Georgia", "GA"},
	Hawaii:        {"Hawaii", "HI"},
	Idaho:         {"Idaho", "ID"},
	Illinois:      {"Illinois", "IL"},
	Indiana:       {"Indiana", "IN"},
	Iowa:          {"Iowa", "IA"},
	Kansas:        {"Kansas", "KS"},
	Kentucky:      {"Kentucky", "KY"},
	Louisiana:     {"Louisiana", "LA"},
	Maine:         {"Maine", "ME"},
	Maryland:      {"Maryland", "MD"},
	Massachusetts: {"Massachusetts", "MA"},
	Michigan:      {"Michigan", "MI"},
	Minnesota:     {"Minnesota", "MN"},
	Mississippi:   {"Mississippi", "MS"},
	Missouri:      {"Missouri", "MO"},
	Montana:       {"Montana", "MT"},
	Nebraska:      {"Nebraska", "NE"},
	Nevada:        {"Nevada", "NV"},
	NewHampshire:  {"New Hampshire", "NH"},
	NewJersey:     {"New Jersey", "NJ"},
	NewMexico:     {"New Mexico", "NM"},
	NewYork:       {"New York", "NY"},
	NorthCarolina: {"North Carolina", "NC"},
	NorthDakota:   {"North Dakota", "ND"},
	Ohio:          {"Ohio", "OH"},
	Oklahoma:      {"Oklahoma", "OK"},
	Oregon:        {"Oregon", "OR"},
	Pennsylvania:  {"Pennsylvania", "PA"},
	RhodeIsland:   {"Rhode Island", "RI"},
	SouthCarolina: {"South Carolina", "SC"},
	SouthDakota:   {"South Dakota", "SD"},
	Tennessee:     {"Tennessee", "TN"},
	Texas:         {"Texas", "TX"},
	Utah:          {"Utah", "UT"},
	Vermont:       {"Vermont", "VT"},
	Virginia:      {"Virginia", "VA"},
	Washington:    {"Washington", "WA"},
	WestVirginia:  {"West Virginia", "WV"},
	Wisconsin:     {"Wisconsin", "WI"},
	Wyoming:       {"Wyoming", "WY"},
}

// StateOption is one row of the state picker
type StateOption struct {
	Name         string
	Abbreviation string
}

// AllStates returns every state in declaration order
func AllStates() []State {
	states := make([]State, len(stateTable))
	for i := range stateTable {
		states[i] = State(i)
	}
	return states
}

// ParseState matches a full state name exactly
func ParseState(name string) (State, bool) {
	for i, entry := range stateTable {
		if entry.name == name {
			return State(i), true
		}
	}
	return 0, false
}

// StateByAbbreviation matches a two-letter postal code exactly
func StateByAbbreviation(abbreviation string) (State, bool) {
	for i, entry := range stateTable {
		if entry.abbreviation == abbreviation {
			return State(i), true
		}
	}
	return 0, false
}

func (s State) known() bool {
	return s >= 0 && int(s) < len(stateTable)
}

// Name returns the full state name, the value stored in a contact
func (s State) Name() string {
	if !s.known() {
		return ""
	}
	return stateTable[s].name
}

// Abbreviation returns the postal abbreviation
func (s State) Abbreviation() string {
	if !s.known() {
		return ""
	}
	return stateTable[s].abbreviation
}

// String implements fmt.Stringer
func (s State) String() string {
	return s.Name()
}

// StateOptions builds the picker list: a blank "--" row followed by every state
func StateOptions() []StateOption {
	options := make([]StateOption, 0, len(stateTable)+1)
	options = append(options, StateOption{Name: "--"})
	for _, entry := range stateTable {
		options = append(options, StateOption{Name: entry.name, Abbreviation: entry.abbreviation})
	}
	return options
}

// StateOptionIndex returns the picker row for a stored state name, 0 when unknown
func StateOptionIndex(name string) int {
	state, ok := ParseState(name)
	if !ok {
		return 0
	}
	return int(state) + 1
}
