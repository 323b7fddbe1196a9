package entity

// SQLExample is a curated question/SQL pair used as a few-shot example
// for query generation.
type SQLExample struct {
	Question string
	SQL      string
	Score    float64
}
