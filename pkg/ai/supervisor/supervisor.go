package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/pkg/rag/docagent"
	"admission-advisor-be/pkg/schoolinfo"
	"admission-advisor-be/pkg/sqlagent"
	"admission-advisor-be/pkg/store"
)

// DocumentAgent answers regulation questions from the legal corpus.
type DocumentAgent interface {
	Process(ctx context.Context, question string) (*docagent.Result, error)
}

// SQLAgent answers numeric questions from the score database.
type SQLAgent interface {
	Process(ctx context.Context, question string) (*sqlagent.Result, error)
}

// SchoolAgent answers school profile questions.
type SchoolAgent interface {
	Process(ctx context.Context, question string) (*schoolinfo.Result, error)
}

// Config holds the execution tunables.
type Config struct {
	StepTimeout time.Duration
}

// Supervisor executes plans step by step and merges the per-step
// fragments into one answer. Steps run in plan order; a failed or
// given-up step marks the merged answer degraded but never aborts the
// remaining steps.
type Supervisor struct {
	docAgent    DocumentAgent
	sqlAgent    SQLAgent
	schoolAgent SchoolAgent
	config      Config
	logger      *log.Logger
}

func NewSupervisor(
	docAgent DocumentAgent,
	sqlAgent SQLAgent,
	schoolAgent SchoolAgent,
	config Config,
	logger *log.Logger,
) *Supervisor {
	if config.StepTimeout <= 0 {
		config.StepTimeout = 10 * time.Second
	}
	return &Supervisor{
		docAgent:    docAgent,
		sqlAgent:    sqlAgent,
		schoolAgent: schoolAgent,
		config:      config,
		logger:      logger,
	}
}

// Execute runs every step of the plan and merges the results. A clarify
// plan short-circuits to the canned clarification reply.
func (s *Supervisor) Execute(ctx context.Context, plan *entity.Plan) (*entity.MergedAnswer, error) {
	if plan.Clarify {
		return &entity.MergedAnswer{
			Fragments: []entity.Fragment{{Text: constant.ClarificationResponse}},
		}, nil
	}
	if len(plan.Steps) == 0 {
		return nil, fmt.Errorf("empty plan")
	}

	results := make([]*annotatedResult, 0, len(plan.Steps))
	var sqlResult *sqlagent.Result

	for i, step := range plan.Steps {
		// A later document step inherits what the numeric step learned.
		if step.Agent == entity.StepAgentDocument && sqlResult != nil {
			step.Question = parameterize(step.Question, sqlResult)
		}

		result := s.runStep(ctx, step)
		s.logger.Printf("[SUPERVISOR] step %d/%d agent=%s outcome=%s", i+1, len(plan.Steps), step.Agent, result.Outcome)
		results = append(results, result)

		if step.Agent == entity.StepAgentSQL && result.Outcome == entity.StepDone {
			if r, ok := result.raw.(*sqlagent.Result); ok {
				sqlResult = r
			}
		}
	}

	return s.merge(results), nil
}

type annotatedResult struct {
	entity.StepResult
	raw interface{}
}

// runStep dispatches one step with its own timeout. Agent failures are
// mapped to outcomes, not propagated: give-ups are low confidence, infra
// errors and exhausted budgets are failures.
func (s *Supervisor) runStep(ctx context.Context, step entity.PlanStep) *annotatedResult {
	stepCtx, cancel := context.WithTimeout(ctx, s.config.StepTimeout)
	defer cancel()

	result := &annotatedResult{StepResult: entity.StepResult{Step: step, Outcome: entity.StepDone}}

	switch step.Agent {
	case entity.StepAgentSQL:
		r, err := s.sqlAgent.Process(stepCtx, step.Question)
		if err != nil {
			return s.failed(step, err)
		}
		result.Fragment = entity.Fragment{Text: r.Answer, Source: step.Agent}
		result.Evidence = []entity.Evidence{{Kind: entity.EvidenceKindSQL, SQL: r.SQL}}
		result.raw = r

	case entity.StepAgentDocument:
		r, err := s.docAgent.Process(stepCtx, step.Question)
		if err != nil {
			return s.failed(step, err)
		}
		result.Fragment = entity.Fragment{Text: r.Answer, Source: step.Agent}
		result.Evidence = r.Evidence
		result.raw = r

	case entity.StepAgentSchoolInfo:
		r, err := s.schoolAgent.Process(stepCtx, step.Question)
		if errors.Is(err, schoolinfo.ErrSchoolNotFound) {
			// Unmatched school falls back to the document corpus.
			s.logger.Printf("[SUPERVISOR] school not matched, falling back to document lookup")
			return s.runStep(ctx, entity.PlanStep{Agent: entity.StepAgentDocument, Question: step.Question})
		}
		if err != nil {
			return s.failed(step, err)
		}
		result.Fragment = entity.Fragment{Text: r.Answer, Source: step.Agent}
		result.Evidence = r.Evidence
		result.raw = r

	default:
		return s.failed(step, fmt.Errorf("unknown step agent: %s", step.Agent))
	}

	return result
}

func (s *Supervisor) failed(step entity.PlanStep, err error) *annotatedResult {
	outcome := entity.StepFailed
	text := constant.VerifyFailedResponse

	switch {
	case errors.Is(err, store.ErrNoRelevantSource):
		outcome = entity.StepLowConfidence
		text = constant.NoSourceResponse
	case errors.Is(err, store.ErrQueryExhausted):
		outcome = entity.StepLowConfidence
		text = constant.QueryFailedResponse
	}

	s.logger.Printf("[SUPERVISOR] step agent=%s failed: %v", step.Agent, err)
	return &annotatedResult{StepResult: entity.StepResult{
		Step:     step,
		Outcome:  outcome,
		Fragment: entity.Fragment{Text: text, Source: step.Agent},
		Err:      err,
	}}
}

// merge concatenates fragments in plan order and unions the evidence.
// Degraded is set when any step ended in a failure or a give-up, so the
// caller can label the answer as partial.
func (s *Supervisor) merge(results []*annotatedResult) *entity.MergedAnswer {
	merged := &entity.MergedAnswer{}
	for _, r := range results {
		if r.Fragment.Text != "" {
			merged.Fragments = append(merged.Fragments, r.Fragment)
		}
		merged.Evidence = append(merged.Evidence, r.Evidence...)
		merged.Steps = append(merged.Steps, entity.StepRecord{
			Agent:    r.Step.Agent,
			Question: r.Step.Question,
			Outcome:  r.Outcome,
		})
		if r.Outcome != entity.StepDone {
			merged.Degraded = true
		}
	}
	return merged
}

// parameterize folds the numeric outcome into the document sub-question
// of a hybrid plan ("26 điểm có đỗ không và cần sức khỏe gì" grounds the
// regulation lookup on what the score query found).
func parameterize(question string, sqlResult *sqlagent.Result) string {
	summary := sqlResult.Answer
	if len([]rune(summary)) > 300 {
		summary = string([]rune(summary)[:300]) + "..."
	}
	return fmt.Sprintf("%s\n\n(Kết quả tra cứu điểm liên quan: %s)", question, summary)
}
