package supervisor

import (
	"fmt"
	"strings"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/pkg/vietnamese"
)

// Planner turns a routing decision into an ordered plan. The rules are
// deterministic; no model call is involved.
type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// Plan maps the intent to its steps. Hybrid questions always order the
// numeric step before the document step so the document sub-question can
// be parameterized with the numeric outcome. Unknown intents ask for
// clarification instead of guessing.
func (p *Planner) Plan(decision *entity.RouteDecision, question string, memory entity.EntityMemory) *entity.Plan {
	resolved := ResolveQuestion(question, memory)

	switch decision.Intent {
	case entity.IntentNumericLookup:
		return &entity.Plan{Steps: []entity.PlanStep{
			{Agent: entity.StepAgentSQL, Question: resolved},
		}}
	case entity.IntentDocumentLookup:
		return &entity.Plan{Steps: []entity.PlanStep{
			{Agent: entity.StepAgentDocument, Question: resolved},
		}}
	case entity.IntentSchoolInfo:
		return &entity.Plan{Steps: []entity.PlanStep{
			{Agent: entity.StepAgentSchoolInfo, Question: resolved},
		}}
	case entity.IntentHybrid:
		return &entity.Plan{Steps: []entity.PlanStep{
			{Agent: entity.StepAgentSQL, Question: resolved},
			{Agent: entity.StepAgentDocument, Question: resolved},
		}}
	default:
		return &entity.Plan{Clarify: true}
	}
}

// ResolveQuestion appends remembered slot values a follow-up question
// leaves implicit ("còn năm 2023 thì sao?" after asking about a school).
// Slots already present in the text are not repeated.
func ResolveQuestion(question string, memory entity.EntityMemory) string {
	normalized := vietnamese.Normalize(question)

	var ctx []string
	if memory.School != "" && !strings.Contains(normalized, vietnamese.Normalize(memory.School)) {
		ctx = append(ctx, fmt.Sprintf("trường: %s", memory.School))
	}
	if memory.Year != nil {
		if _, mentioned := vietnamese.ExtractYear(question); !mentioned {
			ctx = append(ctx, fmt.Sprintf("năm: %d", *memory.Year))
		}
	}
	if memory.Score != nil {
		if _, mentioned := vietnamese.ExtractScore(question); !mentioned {
			ctx = append(ctx, fmt.Sprintf("điểm: %g", *memory.Score))
		}
	}
	if memory.ExamBlock != "" {
		if _, mentioned := vietnamese.ExtractExamBlock(question); !mentioned {
			ctx = append(ctx, fmt.Sprintf("khối: %s", memory.ExamBlock))
		}
	}

	if len(ctx) == 0 {
		return question
	}
	return fmt.Sprintf("%s (ngữ cảnh hội thoại: %s)", question, strings.Join(ctx, ", "))
}

// UpdateMemory folds the slots mentioned by text into memory. Slots the
// text does not mention keep their previous value.
func UpdateMemory(memory entity.EntityMemory, text string) entity.EntityMemory {
	if year, ok := vietnamese.ExtractYear(text); ok {
		memory.Year = &year
	}
	if score, ok := vietnamese.ExtractScore(text); ok {
		memory.Score = &score
	}
	if block, ok := vietnamese.ExtractExamBlock(text); ok {
		memory.ExamBlock = block
	}
	return memory
}
