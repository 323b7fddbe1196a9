package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// SQLExample is a curated question/SQL pair, embedded for few-shot
// selection by semantic similarity.
type SQLExample struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question       string          `gorm:"type:text;not null"`
	SQL            string          `gorm:"column:sql;type:text;not null"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (SQLExample) TableName() string {
	return "sql_examples"
}
