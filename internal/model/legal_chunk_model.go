package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// LegalChunk is a passage of an admission regulation document with its
// embedding and position in the document hierarchy.
type LegalChunk struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content        string          `gorm:"type:text;not null"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text are 768-d
	Document       string          `gorm:"type:varchar(255);index"`
	Chapter        string          `gorm:"type:varchar(255)"`
	Article        string          `gorm:"type:varchar(255)"`
	Clause         string          `gorm:"type:varchar(255)"`
	ParentId       *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (LegalChunk) TableName() string {
	return "legal_chunks"
}
