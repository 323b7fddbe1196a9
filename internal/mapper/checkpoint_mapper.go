package mapper

import (
	"encoding/json"
	"fmt"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/model"

	"gorm.io/datatypes"
)

// checkpointState is the JSONB payload stored per checkpoint row.
type checkpointState struct {
	Memory entity.EntityMemory `json:"memory"`
	Turns  []entity.TurnRecord `json:"turns"`
	Steps  []entity.StepRecord `json:"steps,omitempty"`
}

type CheckpointMapper struct{}

func NewCheckpointMapper() *CheckpointMapper {
	return &CheckpointMapper{}
}

func (m *CheckpointMapper) ToEntity(c *model.Checkpoint) (*entity.Checkpoint, error) {
	if c == nil {
		return nil, nil
	}

	var state checkpointState
	if err := json.Unmarshal(c.State, &state); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint state: %w", err)
	}

	return &entity.Checkpoint{
		SessionId: c.SessionId,
		Seq:       c.Seq,
		Memory:    state.Memory,
		Turns:     state.Turns,
		Steps:     state.Steps,
		CreatedAt: c.CreatedAt,
	}, nil
}

func (m *CheckpointMapper) ToModel(c *entity.Checkpoint) (*model.Checkpoint, error) {
	if c == nil {
		return nil, nil
	}

	raw, err := json.Marshal(checkpointState{Memory: c.Memory, Turns: c.Turns, Steps: c.Steps})
	if err != nil {
		return nil, fmt.Errorf("failed to encode checkpoint state: %w", err)
	}

	return &model.Checkpoint{
		SessionId: c.SessionId,
		Seq:       c.Seq,
		State:     datatypes.JSON(raw),
		CreatedAt: c.CreatedAt,
	}, nil
}
