package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Chunk is a passage of a legal document with its position in the
// document hierarchy.
type Chunk struct {
	Id       uuid.UUID
	Content  string
	Document string // e.g. "Thông tư 24/2024"
	Chapter  string // e.g. "Chương II"
	Article  string // e.g. "Điều 5"
	Clause   string // e.g. "Khoản 2"
	ParentId *uuid.UUID
	Score    float64
}

// Path renders the hierarchy as "Document > Chapter > Article > Clause",
// skipping empty levels.
func (c *Chunk) Path() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Document, c.Chapter, c.Article, c.Clause} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " > ")
}
