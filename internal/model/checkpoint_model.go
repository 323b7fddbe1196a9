package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Checkpoint is one append-only snapshot of a conversation session.
// (SessionId, Seq) is unique and Seq is strictly increasing per session;
// rows are never updated or deleted.
type Checkpoint struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string         `gorm:"type:varchar(100);not null;uniqueIndex:uq_session_seq"`
	Seq       int            `gorm:"not null;uniqueIndex:uq_session_seq"`
	State     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Checkpoint) TableName() string {
	return "checkpoints"
}
