package contract

import (
	"context"
	"errors"

	"admission-advisor-be/internal/entity"
)

// ErrCheckpointNotFound is returned by Latest and Rewind when the session
// has no checkpoint (or none at the requested sequence number).
var ErrCheckpointNotFound = errors.New("checkpoint not found")

// CheckpointRepository is an append-only log of session snapshots.
// Checkpoints are never updated or deleted; Rewind is a pure read and
// does not truncate the log.
type CheckpointRepository interface {
	// Append persists cp with the next sequence number for its session
	// and fills in cp.Seq. Sequence numbers are strictly increasing and
	// assigned atomically.
	Append(ctx context.Context, cp *entity.Checkpoint) error
	// Latest returns the checkpoint with the highest sequence number.
	Latest(ctx context.Context, sessionId string) (*entity.Checkpoint, error)
	// Rewind returns the checkpoint at exactly seq.
	Rewind(ctx context.Context, sessionId string, seq int) (*entity.Checkpoint, error)
	// History returns all checkpoints for the session in sequence order.
	History(ctx context.Context, sessionId string) ([]*entity.Checkpoint, error)
}
