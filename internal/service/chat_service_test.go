package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/dto"
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/repository/memory"
	"admission-advisor-be/pkg/ai/supervisor"
	"admission-advisor-be/pkg/schoolinfo"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeRouter struct {
	decision *entity.RouteDecision
	err      error
}

func (f *fakeRouter) Route(ctx context.Context, text string) (*entity.RouteDecision, error) {
	return f.decision, f.err
}

// spyExecutor records the plans it is asked to run.
type spyExecutor struct {
	mu     sync.Mutex
	merged *entity.MergedAnswer
	err    error
	plans  []*entity.Plan
}

func (f *spyExecutor) Execute(ctx context.Context, plan *entity.Plan) (*entity.MergedAnswer, error) {
	f.mu.Lock()
	f.plans = append(f.plans, plan)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.merged, nil
}

type fakeMatcher struct {
	school *entity.School
	err    error
}

func (f *fakeMatcher) MatchSchool(ctx context.Context, question string) (*entity.School, error) {
	return f.school, f.err
}

func numericDecision() *entity.RouteDecision {
	return &entity.RouteDecision{
		Intent:     entity.IntentNumericLookup,
		Route:      "score_lookup",
		Confidence: 0.9,
		Matched:    true,
	}
}

func newTestService(rt Router, exec Executor, matcher SchoolMatcher) (IChatService, *memory.CheckpointRepository) {
	checkpoints := memory.NewCheckpointRepository()
	svc := NewChatService(rt, supervisor.NewPlanner(), exec, matcher, checkpoints, nopLogger{})
	return svc, checkpoints
}

func TestHandleTurnEmptyText(t *testing.T) {
	svc, _ := newTestService(&fakeRouter{}, &spyExecutor{}, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	_, err := svc.HandleTurn(context.Background(), &dto.TurnRequest{Text: "   "})
	assert.True(t, errors.Is(err, ErrEmptyText))
}

func TestHandleTurnGeneratesSessionId(t *testing.T) {
	exec := &spyExecutor{merged: &entity.MergedAnswer{
		Fragments: []entity.Fragment{{Text: "Điểm chuẩn là 26.5.", Source: entity.StepAgentSQL}},
	}}
	svc, _ := newTestService(&fakeRouter{decision: numericDecision()}, exec, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	resp, err := svc.HandleTurn(context.Background(), &dto.TurnRequest{Text: "điểm chuẩn?"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionId)
	assert.Equal(t, 1, resp.Seq)
}

func TestHandleTurnFastPathSkipsAgents(t *testing.T) {
	exec := &spyExecutor{}
	rt := &fakeRouter{decision: &entity.RouteDecision{
		Intent:     entity.IntentTrivialFAQ,
		Route:      "greeting",
		Confidence: 0.95,
		Matched:    true,
		Response:   constant.GreetingResponse,
	}}
	svc, _ := newTestService(rt, exec, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	resp, err := svc.HandleTurn(context.Background(), &dto.TurnRequest{SessionId: "s1", Text: "xin chào"})

	require.NoError(t, err)
	require.Len(t, resp.AnswerFragments, 1)
	assert.Equal(t, constant.GreetingResponse, resp.AnswerFragments[0].Text)
	assert.False(t, resp.Degraded)
	// The planner and agents are never consulted.
	assert.Empty(t, exec.plans)
}

func TestHandleTurnUnmatchedStillPlansClarification(t *testing.T) {
	exec := &spyExecutor{merged: &entity.MergedAnswer{
		Fragments: []entity.Fragment{{Text: constant.ClarificationResponse}},
	}}
	rt := &fakeRouter{decision: &entity.RouteDecision{
		Intent:     entity.IntentUnknown,
		Confidence: 0.4,
		Matched:    false,
	}}
	svc, _ := newTestService(rt, exec, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	resp, err := svc.HandleTurn(context.Background(), &dto.TurnRequest{SessionId: "s1", Text: "ờm..."})

	require.NoError(t, err)
	require.Len(t, exec.plans, 1)
	assert.True(t, exec.plans[0].Clarify)
	require.Len(t, resp.AnswerFragments, 1)
	assert.Equal(t, constant.ClarificationResponse, resp.AnswerFragments[0].Text)
}

func TestHandleTurnCarriesMemoryAcrossTurns(t *testing.T) {
	exec := &spyExecutor{merged: &entity.MergedAnswer{
		Fragments: []entity.Fragment{{Text: "Điểm chuẩn năm 2024 là 26.5.", Source: entity.StepAgentSQL}},
	}}
	matcher := &fakeMatcher{school: &entity.School{Name: "Học viện Kỹ thuật Quân sự"}}
	svc, checkpoints := newTestService(&fakeRouter{decision: numericDecision()}, exec, matcher)

	ctx := context.Background()
	_, err := svc.HandleTurn(ctx, &dto.TurnRequest{SessionId: "s1", Text: "điểm chuẩn HVKTQS năm 2024?"})
	require.NoError(t, err)

	// Second turn leaves the school and year implicit; the stored memory
	// fills them into the planned sub-question.
	matcher.school = nil
	matcher.err = schoolinfo.ErrSchoolNotFound
	_, err = svc.HandleTurn(ctx, &dto.TurnRequest{SessionId: "s1", Text: "còn ngành quân y thì sao?"})
	require.NoError(t, err)

	require.Len(t, exec.plans, 2)
	question := exec.plans[1].Steps[0].Question
	assert.Contains(t, question, "Học viện Kỹ thuật Quân sự")
	assert.Contains(t, question, "2024")

	latest, err := checkpoints.Latest(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Seq)
	assert.Equal(t, "Học viện Kỹ thuật Quân sự", latest.Memory.School)
	require.NotNil(t, latest.Memory.Year)
	assert.Equal(t, 2024, *latest.Memory.Year)
}

func TestHandleTurnAppendsUserAndAssistantTurns(t *testing.T) {
	exec := &spyExecutor{merged: &entity.MergedAnswer{
		Fragments: []entity.Fragment{{Text: "Điểm chuẩn là 26.5.", Source: entity.StepAgentSQL}},
		Degraded:  true,
	}}
	svc, checkpoints := newTestService(&fakeRouter{decision: numericDecision()}, exec, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	resp, err := svc.HandleTurn(context.Background(), &dto.TurnRequest{SessionId: "s1", Text: "điểm chuẩn?"})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)

	latest, err := checkpoints.Latest(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, latest.Turns, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, latest.Turns[0].Role)
	assert.Equal(t, "điểm chuẩn?", latest.Turns[0].Content)
	assert.Equal(t, constant.ChatMessageRoleAssistant, latest.Turns[1].Role)
	// A degraded answer tells the user so.
	assert.Contains(t, latest.Turns[1].Content, constant.DegradedNotice)
}

func TestGetHistoryAndRewind(t *testing.T) {
	exec := &spyExecutor{merged: &entity.MergedAnswer{
		Fragments: []entity.Fragment{{Text: "câu trả lời", Source: entity.StepAgentSQL}},
	}}
	svc, _ := newTestService(&fakeRouter{decision: numericDecision()}, exec, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	ctx := context.Background()
	for _, text := range []string{"điểm chuẩn 2023?", "điểm chuẩn 2024?", "điểm chuẩn 2025?"} {
		_, err := svc.HandleTurn(ctx, &dto.TurnRequest{SessionId: "s1", Text: text})
		require.NoError(t, err)
	}

	history, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history.Checkpoints, 3)

	cp, err := svc.Rewind(ctx, &dto.RewindRequest{SessionId: "s1", Seq: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, cp.Seq)
	require.NotNil(t, cp.Memory.Year)
	assert.Equal(t, 2024, *cp.Memory.Year)

	// Rewind does not shorten the log.
	history, err = svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history.Checkpoints, 3)
}

func TestHandleTurnPersistsExecutionTrace(t *testing.T) {
	exec := &spyExecutor{merged: &entity.MergedAnswer{
		Fragments: []entity.Fragment{
			{Text: "Điểm chuẩn là 26.5.", Source: entity.StepAgentSQL},
			{Text: constant.NoSourceResponse, Source: entity.StepAgentDocument},
		},
		Steps: []entity.StepRecord{
			{Agent: entity.StepAgentSQL, Question: "điểm chuẩn?", Outcome: entity.StepDone},
			{Agent: entity.StepAgentDocument, Question: "tiêu chuẩn?", Outcome: entity.StepLowConfidence},
		},
		Degraded: true,
	}}
	svc, checkpoints := newTestService(&fakeRouter{decision: numericDecision()}, exec, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	_, err := svc.HandleTurn(context.Background(), &dto.TurnRequest{SessionId: "s1", Text: "26 điểm có đỗ không?"})
	require.NoError(t, err)

	// The checkpoint carries the executed plan and the per-step outcomes.
	latest, err := checkpoints.Latest(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, latest.Steps, 2)
	assert.Equal(t, entity.StepAgentSQL, latest.Steps[0].Agent)
	assert.Equal(t, entity.StepDone, latest.Steps[0].Outcome)
	assert.Equal(t, entity.StepAgentDocument, latest.Steps[1].Agent)
	assert.Equal(t, entity.StepLowConfidence, latest.Steps[1].Outcome)
}

func TestHandleTurnReplayIsDeterministic(t *testing.T) {
	// Two identical services, identically seeded, process the same turn:
	// the planned sub-questions and the merged answer must come out the
	// same both times.
	merged := &entity.MergedAnswer{
		Fragments: []entity.Fragment{{Text: "Điểm chuẩn năm 2024 là 26.5.", Source: entity.StepAgentSQL}},
		Steps:     []entity.StepRecord{{Agent: entity.StepAgentSQL, Question: "q", Outcome: entity.StepDone}},
	}

	run := func() (*dto.TurnResponse, *entity.Plan) {
		exec := &spyExecutor{merged: merged}
		matcher := &fakeMatcher{school: &entity.School{Name: "Học viện Kỹ thuật Quân sự"}}
		svc, _ := newTestService(&fakeRouter{decision: numericDecision()}, exec, matcher)

		ctx := context.Background()
		_, err := svc.HandleTurn(ctx, &dto.TurnRequest{SessionId: "s1", Text: "điểm chuẩn HVKTQS năm 2024?"})
		require.NoError(t, err)

		resp, err := svc.HandleTurn(ctx, &dto.TurnRequest{SessionId: "s1", Text: "còn ngành quân y thì sao?"})
		require.NoError(t, err)
		require.Len(t, exec.plans, 2)
		return resp, exec.plans[1]
	}

	firstResp, firstPlan := run()
	secondResp, secondPlan := run()

	assert.Equal(t, firstPlan, secondPlan)
	assert.Equal(t, firstResp.AnswerFragments, secondResp.AnswerFragments)
	assert.Equal(t, firstResp.Evidence, secondResp.Evidence)
	assert.Equal(t, firstResp.Degraded, secondResp.Degraded)
	assert.Equal(t, firstResp.Seq, secondResp.Seq)
}

func TestHandleTurnExecutorFailurePropagates(t *testing.T) {
	exec := &spyExecutor{err: errors.New("infrastructure collapsed")}
	svc, checkpoints := newTestService(&fakeRouter{decision: numericDecision()}, exec, &fakeMatcher{err: schoolinfo.ErrSchoolNotFound})

	_, err := svc.HandleTurn(context.Background(), &dto.TurnRequest{SessionId: "s1", Text: "điểm chuẩn?"})
	require.Error(t, err)

	// A failed turn writes no checkpoint.
	_, err = checkpoints.Latest(context.Background(), "s1")
	assert.Error(t, err)
}
