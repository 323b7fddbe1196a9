package entity

import "time"

// EntityMemory holds slot values carried across turns so follow-up
// questions like "còn năm 2023 thì sao?" resolve against earlier context.
type EntityMemory struct {
	School    string   `json:"school,omitempty"`
	Score     *float64 `json:"score,omitempty"`
	Year      *int     `json:"year,omitempty"`
	ExamBlock string   `json:"exam_block,omitempty"`
	Region    string   `json:"region,omitempty"`
}

// TurnRecord is one message in the conversation transcript.
type TurnRecord struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Checkpoint is an immutable snapshot of a session after one turn.
// Seq is strictly increasing per session; checkpoints are never mutated
// in place, a new one is appended after every turn.
type Checkpoint struct {
	SessionId string
	Seq       int
	Memory    EntityMemory
	Turns     []TurnRecord
	Steps     []StepRecord
	CreatedAt time.Time
}
