package supervisor

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/pkg/rag/docagent"
	"admission-advisor-be/pkg/schoolinfo"
	"admission-advisor-be/pkg/sqlagent"
	"admission-advisor-be/pkg/store"
)

type fakeDocAgent struct {
	result    *docagent.Result
	err       error
	questions []string
}

func (f *fakeDocAgent) Process(ctx context.Context, question string) (*docagent.Result, error) {
	f.questions = append(f.questions, question)
	return f.result, f.err
}

type fakeSQLAgent struct {
	result    *sqlagent.Result
	err       error
	questions []string
}

func (f *fakeSQLAgent) Process(ctx context.Context, question string) (*sqlagent.Result, error) {
	f.questions = append(f.questions, question)
	return f.result, f.err
}

type fakeSchoolAgent struct {
	result *schoolinfo.Result
	err    error
}

func (f *fakeSchoolAgent) Process(ctx context.Context, question string) (*schoolinfo.Result, error) {
	return f.result, f.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestSupervisor(doc *fakeDocAgent, sql *fakeSQLAgent, school *fakeSchoolAgent) *Supervisor {
	return NewSupervisor(doc, sql, school, Config{}, testLogger())
}

func TestExecuteClarifyPlan(t *testing.T) {
	s := newTestSupervisor(&fakeDocAgent{}, &fakeSQLAgent{}, &fakeSchoolAgent{})

	merged, err := s.Execute(context.Background(), &entity.Plan{Clarify: true})

	require.NoError(t, err)
	require.Len(t, merged.Fragments, 1)
	assert.Equal(t, constant.ClarificationResponse, merged.Fragments[0].Text)
	assert.False(t, merged.Degraded)
}

func TestExecuteHybridParameterizesDocumentStep(t *testing.T) {
	sql := &fakeSQLAgent{result: &sqlagent.Result{
		Answer: "Điểm chuẩn CNTT năm 2024 là 26.5.",
		SQL:    "SELECT diem_chuan FROM view_tra_cuu_diem;",
	}}
	doc := &fakeDocAgent{result: &docagent.Result{
		Answer:   "Thí sinh cần đạt tiêu chuẩn sức khỏe loại 1.",
		Evidence: []entity.Evidence{{Kind: entity.EvidenceKindDocument, Path: "Thông tư 24 > Điều 5"}},
	}}

	s := newTestSupervisor(doc, sql, &fakeSchoolAgent{})
	plan := &entity.Plan{Steps: []entity.PlanStep{
		{Agent: entity.StepAgentSQL, Question: "26 điểm có đỗ CNTT không?"},
		{Agent: entity.StepAgentDocument, Question: "26 điểm có đỗ CNTT không?"},
	}}

	merged, err := s.Execute(context.Background(), plan)

	require.NoError(t, err)
	// Fragments keep plan order: numeric answer first.
	require.Len(t, merged.Fragments, 2)
	assert.Equal(t, entity.StepAgentSQL, merged.Fragments[0].Source)
	assert.Equal(t, entity.StepAgentDocument, merged.Fragments[1].Source)

	// The document sub-question carries the numeric outcome.
	require.Len(t, doc.questions, 1)
	assert.Contains(t, doc.questions[0], "26.5")

	// Evidence unions both steps.
	require.Len(t, merged.Evidence, 2)
	assert.Equal(t, entity.EvidenceKindSQL, merged.Evidence[0].Kind)
	assert.Equal(t, entity.EvidenceKindDocument, merged.Evidence[1].Kind)
	assert.False(t, merged.Degraded)

	// The executed plan is traced step by step.
	require.Len(t, merged.Steps, 2)
	assert.Equal(t, entity.StepAgentSQL, merged.Steps[0].Agent)
	assert.Equal(t, entity.StepAgentDocument, merged.Steps[1].Agent)
	assert.Equal(t, entity.StepDone, merged.Steps[0].Outcome)
	assert.Equal(t, entity.StepDone, merged.Steps[1].Outcome)
}

func TestExecuteFailedStepDegradesButContinues(t *testing.T) {
	sql := &fakeSQLAgent{err: store.ClassifyInfraErr(context.DeadlineExceeded)}
	doc := &fakeDocAgent{result: &docagent.Result{Answer: "Tiêu chuẩn sức khỏe loại 1."}}

	s := newTestSupervisor(doc, sql, &fakeSchoolAgent{})
	plan := &entity.Plan{Steps: []entity.PlanStep{
		{Agent: entity.StepAgentSQL, Question: "q"},
		{Agent: entity.StepAgentDocument, Question: "q"},
	}}

	merged, err := s.Execute(context.Background(), plan)

	require.NoError(t, err)
	assert.True(t, merged.Degraded)
	// The document step still ran, without the numeric context.
	require.Len(t, doc.questions, 1)
	assert.Equal(t, "q", doc.questions[0])
	require.Len(t, merged.Fragments, 2)
	assert.Equal(t, constant.VerifyFailedResponse, merged.Fragments[0].Text)
	// The execution trace records the per-step outcomes.
	require.Len(t, merged.Steps, 2)
	assert.Equal(t, entity.StepFailed, merged.Steps[0].Outcome)
	assert.Equal(t, entity.StepDone, merged.Steps[1].Outcome)
}

func TestExecuteGiveUpSurfacesDegraded(t *testing.T) {
	tests := []struct {
		name     string
		plan     *entity.Plan
		doc      *fakeDocAgent
		sql      *fakeSQLAgent
		wantText string
	}{
		{
			name: "document give-up",
			plan: &entity.Plan{Steps: []entity.PlanStep{
				{Agent: entity.StepAgentDocument, Question: "q"},
			}},
			doc:      &fakeDocAgent{err: store.ErrNoRelevantSource},
			sql:      &fakeSQLAgent{},
			wantText: constant.NoSourceResponse,
		},
		{
			name: "query exhausted",
			plan: &entity.Plan{Steps: []entity.PlanStep{
				{Agent: entity.StepAgentSQL, Question: "q"},
			}},
			doc:      &fakeDocAgent{},
			sql:      &fakeSQLAgent{err: store.ErrQueryExhausted},
			wantText: constant.QueryFailedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSupervisor(tt.doc, tt.sql, &fakeSchoolAgent{})

			merged, err := s.Execute(context.Background(), tt.plan)

			require.NoError(t, err)
			// A give-up still degrades the answer: part of the question
			// went unanswered, and the caller must label it as such.
			assert.True(t, merged.Degraded)
			require.Len(t, merged.Fragments, 1)
			assert.Equal(t, tt.wantText, merged.Fragments[0].Text)
			require.Len(t, merged.Steps, 1)
			assert.Equal(t, entity.StepLowConfidence, merged.Steps[0].Outcome)
		})
	}
}

func TestExecuteSchoolNotFoundFallsBackToDocuments(t *testing.T) {
	school := &fakeSchoolAgent{err: schoolinfo.ErrSchoolNotFound}
	doc := &fakeDocAgent{result: &docagent.Result{Answer: "Thông tin chung về các học viện."}}

	s := newTestSupervisor(doc, &fakeSQLAgent{}, school)
	plan := &entity.Plan{Steps: []entity.PlanStep{
		{Agent: entity.StepAgentSchoolInfo, Question: "trường XYZ ở đâu?"},
	}}

	merged, err := s.Execute(context.Background(), plan)

	require.NoError(t, err)
	require.Len(t, doc.questions, 1)
	require.Len(t, merged.Fragments, 1)
	assert.Equal(t, entity.StepAgentDocument, merged.Fragments[0].Source)
	assert.False(t, merged.Degraded)
}

func TestExecuteEmptyPlanIsAnError(t *testing.T) {
	s := newTestSupervisor(&fakeDocAgent{}, &fakeSQLAgent{}, &fakeSchoolAgent{})

	_, err := s.Execute(context.Background(), &entity.Plan{})
	require.Error(t, err)
}

func TestParameterizeTruncatesLongSummaries(t *testing.T) {
	long := make([]rune, 400)
	for i := range long {
		long[i] = 'đ'
	}
	result := &sqlagent.Result{Answer: string(long)}

	q := parameterize("câu hỏi", result)
	assert.Contains(t, q, "câu hỏi")
	assert.Contains(t, q, "...")
	assert.Less(t, len([]rune(q)), 400)
}

func TestExecuteUnknownAgentFails(t *testing.T) {
	s := newTestSupervisor(&fakeDocAgent{}, &fakeSQLAgent{}, &fakeSchoolAgent{})
	plan := &entity.Plan{Steps: []entity.PlanStep{
		{Agent: entity.StepAgent("mystery"), Question: "q"},
	}}

	merged, err := s.Execute(context.Background(), plan)
	require.NoError(t, err)
	assert.True(t, merged.Degraded)
}
