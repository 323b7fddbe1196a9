package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admission-advisor-be/internal/entity"
)

func TestPlan(t *testing.T) {
	planner := NewPlanner()

	tests := []struct {
		name        string
		intent      entity.Intent
		wantAgents  []entity.StepAgent
		wantClarify bool
	}{
		{
			name:       "numeric lookup",
			intent:     entity.IntentNumericLookup,
			wantAgents: []entity.StepAgent{entity.StepAgentSQL},
		},
		{
			name:       "document lookup",
			intent:     entity.IntentDocumentLookup,
			wantAgents: []entity.StepAgent{entity.StepAgentDocument},
		},
		{
			name:       "school info",
			intent:     entity.IntentSchoolInfo,
			wantAgents: []entity.StepAgent{entity.StepAgentSchoolInfo},
		},
		{
			name:   "hybrid orders numeric before document",
			intent: entity.IntentHybrid,
			wantAgents: []entity.StepAgent{
				entity.StepAgentSQL,
				entity.StepAgentDocument,
			},
		},
		{
			name:        "unknown asks for clarification",
			intent:      entity.IntentUnknown,
			wantClarify: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := &entity.RouteDecision{Intent: tt.intent}
			plan := planner.Plan(decision, "câu hỏi", entity.EntityMemory{})

			assert.Equal(t, tt.wantClarify, plan.Clarify)
			require.Len(t, plan.Steps, len(tt.wantAgents))
			for i, agent := range tt.wantAgents {
				assert.Equal(t, agent, plan.Steps[i].Agent)
			}
		})
	}
}

func TestResolveQuestion(t *testing.T) {
	year := 2024
	score := 25.5

	tests := []struct {
		name     string
		question string
		memory   entity.EntityMemory
		want     string
	}{
		{
			name:     "empty memory leaves question untouched",
			question: "điểm chuẩn là bao nhiêu?",
			memory:   entity.EntityMemory{},
			want:     "điểm chuẩn là bao nhiêu?",
		},
		{
			name:     "school and year appended for follow-up",
			question: "còn ngành công nghệ thông tin thì sao?",
			memory:   entity.EntityMemory{School: "Học viện Kỹ thuật Quân sự", Year: &year},
			want:     "còn ngành công nghệ thông tin thì sao? (ngữ cảnh hội thoại: trường: Học viện Kỹ thuật Quân sự, năm: 2024)",
		},
		{
			name:     "year mentioned in text is not repeated",
			question: "điểm chuẩn năm 2023?",
			memory:   entity.EntityMemory{Year: &year},
			want:     "điểm chuẩn năm 2023?",
		},
		{
			name:     "school mentioned in text is not repeated",
			question: "học viện kỹ thuật quân sự tuyển nữ không?",
			memory:   entity.EntityMemory{School: "Học viện Kỹ thuật Quân sự"},
			want:     "học viện kỹ thuật quân sự tuyển nữ không?",
		},
		{
			name:     "score carried over",
			question: "có đỗ ngành y không?",
			memory:   entity.EntityMemory{Score: &score},
			want:     "có đỗ ngành y không? (ngữ cảnh hội thoại: điểm: 25.5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveQuestion(tt.question, tt.memory))
		})
	}
}

func TestUpdateMemory(t *testing.T) {
	oldYear := 2023
	memory := entity.EntityMemory{Year: &oldYear, ExamBlock: "A00"}

	updated := UpdateMemory(memory, "được 26 điểm năm 2025 thì sao?")

	require.NotNil(t, updated.Year)
	assert.Equal(t, 2025, *updated.Year)
	require.NotNil(t, updated.Score)
	assert.InDelta(t, 26.0, *updated.Score, 0.001)
	// Unmentioned slots keep their previous value.
	assert.Equal(t, "A00", updated.ExamBlock)
}
