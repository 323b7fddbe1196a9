package dto

import (
	"time"

	"admission-advisor-be/internal/entity"
)

type TurnRequest struct {
	SessionId string `json:"session_id"`
	Text      string `json:"text"`
}

type FragmentDTO struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

type TurnResponse struct {
	SessionId       string            `json:"session_id"`
	Seq             int               `json:"seq"`
	Intent          string            `json:"intent"`
	AnswerFragments []FragmentDTO     `json:"answer_fragments"`
	Evidence        []entity.Evidence `json:"evidence"`
	Degraded        bool              `json:"degraded"`
}

type CheckpointDTO struct {
	Seq       int                 `json:"seq"`
	Memory    entity.EntityMemory `json:"memory"`
	Turns     []entity.TurnRecord `json:"turns"`
	Steps     []entity.StepRecord `json:"steps,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

type HistoryResponse struct {
	SessionId   string          `json:"session_id"`
	Checkpoints []CheckpointDTO `json:"checkpoints"`
}

type RewindRequest struct {
	SessionId string `json:"session_id"`
	Seq       int    `json:"seq"`
}
