package entity

// School is a military academy or officer school.
type School struct {
	Id          int
	Code        string // e.g. "HVKTQS"
	Name        string
	NameFolded  string // diacritic-stripped name for matching
	Address     string
	Website     string
	Description string
	Majors      []Major
}

// Major is an academic program offered by a school.
type Major struct {
	Code        string
	Name        string
	Description string
}
