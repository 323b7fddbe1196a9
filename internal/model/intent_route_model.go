package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// IntentRoute is one labeled example utterance for the semantic router.
// Response is set only for fast-path routes with a canned reply.
type IntentRoute struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Route          string          `gorm:"type:varchar(50);not null;index"`
	Example        string          `gorm:"type:text;not null"`
	Response       string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (IntentRoute) TableName() string {
	return "intent_routes"
}
