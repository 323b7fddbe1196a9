package implementation

import (
	"context"
	"errors"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/mapper"
	"admission-advisor-be/internal/model"
	"admission-advisor-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CheckpointRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CheckpointMapper
}

func NewCheckpointRepository(db *gorm.DB) contract.CheckpointRepository {
	return &CheckpointRepositoryImpl{
		db:     db,
		mapper: mapper.NewCheckpointMapper(),
	}
}

// Append inserts cp with seq = MAX(seq)+1 for its session. Seq assignment
// and insert run in one transaction; the unique (session_id, seq) index
// rejects concurrent writers so a retrying caller can never observe a gap
// filled out of order.
func (r *CheckpointRepositoryImpl) Append(ctx context.Context, cp *entity.Checkpoint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxSeq int
		err := tx.Model(&model.Checkpoint{}).
			Where("session_id = ?", cp.SessionId).
			Select("COALESCE(MAX(seq), 0)").
			Scan(&maxSeq).Error
		if err != nil {
			return err
		}

		cp.Seq = maxSeq + 1
		m, err := r.mapper.ToModel(cp)
		if err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		cp.CreatedAt = m.CreatedAt
		return nil
	})
}

func (r *CheckpointRepositoryImpl) Latest(ctx context.Context, sessionId string) (*entity.Checkpoint, error) {
	var m model.Checkpoint
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("seq DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.ErrCheckpointNotFound
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *CheckpointRepositoryImpl) Rewind(ctx context.Context, sessionId string, seq int) (*entity.Checkpoint, error) {
	var m model.Checkpoint
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND seq = ?", sessionId, seq).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.ErrCheckpointNotFound
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *CheckpointRepositoryImpl) History(ctx context.Context, sessionId string) ([]*entity.Checkpoint, error) {
	var models []*model.Checkpoint
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionId).
		Order("seq ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	checkpoints := make([]*entity.Checkpoint, len(models))
	for i, m := range models {
		cp, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		checkpoints[i] = cp
	}
	return checkpoints, nil
}
