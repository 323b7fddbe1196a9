package memory

import (
	"context"
	"sync"
	"time"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/repository/contract"
)

// CheckpointRepository is an in-memory checkpoint log. Used in tests and
// when running without a database.
type CheckpointRepository struct {
	mu   sync.Mutex
	logs map[string][]*entity.Checkpoint
}

var _ contract.CheckpointRepository = &CheckpointRepository{}

func NewCheckpointRepository() *CheckpointRepository {
	return &CheckpointRepository{
		logs: make(map[string][]*entity.Checkpoint),
	}
}

func (r *CheckpointRepository) Append(ctx context.Context, cp *entity.Checkpoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[cp.SessionId]
	cp.Seq = len(log) + 1
	cp.CreatedAt = time.Now()

	stored := *cp
	r.logs[cp.SessionId] = append(log, &stored)
	return nil
}

func (r *CheckpointRepository) Latest(ctx context.Context, sessionId string) (*entity.Checkpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[sessionId]
	if len(log) == 0 {
		return nil, contract.ErrCheckpointNotFound
	}
	cp := *log[len(log)-1]
	return &cp, nil
}

func (r *CheckpointRepository) Rewind(ctx context.Context, sessionId string, seq int) (*entity.Checkpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[sessionId]
	if seq < 1 || seq > len(log) {
		return nil, contract.ErrCheckpointNotFound
	}
	cp := *log[seq-1]
	return &cp, nil
}

func (r *CheckpointRepository) History(ctx context.Context, sessionId string) ([]*entity.Checkpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[sessionId]
	out := make([]*entity.Checkpoint, len(log))
	for i, cp := range log {
		copied := *cp
		out[i] = &copied
	}
	return out, nil
}
