package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"admission-advisor-be/internal/constant"
	"admission-advisor-be/internal/dto"
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/pkg/logger"
	"admission-advisor-be/internal/repository/contract"
	"admission-advisor-be/pkg/ai/supervisor"
	"admission-advisor-be/pkg/schoolinfo"
	"admission-advisor-be/pkg/store"

	"github.com/google/uuid"
)

var ErrEmptyText = errors.New("text must not be empty")

// IChatService defines the conversation service interface
type IChatService interface {
	HandleTurn(ctx context.Context, request *dto.TurnRequest) (*dto.TurnResponse, error)
	GetHistory(ctx context.Context, sessionId string) (*dto.HistoryResponse, error)
	Rewind(ctx context.Context, request *dto.RewindRequest) (*dto.CheckpointDTO, error)
}

// Router classifies one utterance.
type Router interface {
	Route(ctx context.Context, text string) (*entity.RouteDecision, error)
}

// Executor runs a plan to a merged answer.
type Executor interface {
	Execute(ctx context.Context, plan *entity.Plan) (*entity.MergedAnswer, error)
}

// SchoolMatcher resolves the school a question mentions, for the memory
// slot update.
type SchoolMatcher interface {
	MatchSchool(ctx context.Context, question string) (*entity.School, error)
}

type chatService struct {
	rt          Router
	planner     *supervisor.Planner
	exec        Executor
	matcher     SchoolMatcher
	checkpoints contract.CheckpointRepository
	locks       *store.SessionLocks
	log         logger.ILogger
}

func NewChatService(
	rt Router,
	planner *supervisor.Planner,
	exec Executor,
	matcher SchoolMatcher,
	checkpoints contract.CheckpointRepository,
	log logger.ILogger,
) IChatService {
	return &chatService{
		rt:          rt,
		planner:     planner,
		exec:        exec,
		matcher:     matcher,
		checkpoints: checkpoints,
		locks:       store.NewSessionLocks(),
		log:         log,
	}
}

// HandleTurn processes one user utterance. Turns of the same session are
// strictly sequential: the per-session lock is held from state load to
// checkpoint append, so a turn always sees the previous turn's snapshot.
func (s *chatService) HandleTurn(ctx context.Context, request *dto.TurnRequest) (*dto.TurnResponse, error) {
	text := strings.TrimSpace(request.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	sessionId := request.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	s.locks.Lock(sessionId)
	defer s.locks.Unlock(sessionId)

	memory, turns, err := s.loadState(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	decision, err := s.rt.Route(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("routing failed: %w", err)
	}
	s.log.Info("chat", "turn routed", map[string]interface{}{
		"session_id": sessionId,
		"intent":     string(decision.Intent),
		"route":      decision.Route,
		"confidence": decision.Confidence,
	})

	var merged *entity.MergedAnswer
	if decision.Intent == entity.IntentTrivialFAQ && decision.Matched {
		// Fast path: templated answer, no plan, no agents.
		merged = &entity.MergedAnswer{
			Fragments: []entity.Fragment{{Text: decision.Response}},
		}
	} else {
		plan := s.planner.Plan(decision, text, memory)
		merged, err = s.exec.Execute(ctx, plan)
		if err != nil {
			return nil, fmt.Errorf("plan execution failed: %w", err)
		}
	}

	memory = s.updateMemory(ctx, memory, text)

	assistantText := renderAnswer(merged)
	now := time.Now()
	cp := &entity.Checkpoint{
		SessionId: sessionId,
		Memory:    memory,
		Steps:     merged.Steps,
		Turns: append(turns,
			entity.TurnRecord{Role: constant.ChatMessageRoleUser, Content: text, CreatedAt: now},
			entity.TurnRecord{Role: constant.ChatMessageRoleAssistant, Content: assistantText, CreatedAt: now},
		),
	}
	if err := s.checkpoints.Append(ctx, cp); err != nil {
		return nil, fmt.Errorf("failed to append checkpoint: %w", err)
	}

	fragments := make([]dto.FragmentDTO, len(merged.Fragments))
	for i, f := range merged.Fragments {
		fragments[i] = dto.FragmentDTO{Text: f.Text, Source: string(f.Source)}
	}

	return &dto.TurnResponse{
		SessionId:       sessionId,
		Seq:             cp.Seq,
		Intent:          string(decision.Intent),
		AnswerFragments: fragments,
		Evidence:        merged.Evidence,
		Degraded:        merged.Degraded,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionId string) (*dto.HistoryResponse, error) {
	checkpoints, err := s.checkpoints.History(ctx, sessionId)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	out := make([]dto.CheckpointDTO, len(checkpoints))
	for i, cp := range checkpoints {
		out[i] = toCheckpointDTO(cp)
	}
	return &dto.HistoryResponse{SessionId: sessionId, Checkpoints: out}, nil
}

// Rewind is a pure read: it returns the snapshot at seq without touching
// the log.
func (s *chatService) Rewind(ctx context.Context, request *dto.RewindRequest) (*dto.CheckpointDTO, error) {
	cp, err := s.checkpoints.Rewind(ctx, request.SessionId, request.Seq)
	if err != nil {
		return nil, err
	}
	out := toCheckpointDTO(cp)
	return &out, nil
}

func (s *chatService) loadState(ctx context.Context, sessionId string) (entity.EntityMemory, []entity.TurnRecord, error) {
	latest, err := s.checkpoints.Latest(ctx, sessionId)
	if errors.Is(err, contract.ErrCheckpointNotFound) {
		return entity.EntityMemory{}, nil, nil
	}
	if err != nil {
		return entity.EntityMemory{}, nil, fmt.Errorf("failed to load session state: %w", err)
	}
	return latest.Memory, latest.Turns, nil
}

// updateMemory folds the slots the new utterance mentions into the
// carried memory. Slots the text does not mention are kept as they were.
func (s *chatService) updateMemory(ctx context.Context, memory entity.EntityMemory, text string) entity.EntityMemory {
	updated := supervisor.UpdateMemory(memory, text)

	if s.matcher != nil {
		school, err := s.matcher.MatchSchool(ctx, text)
		if err == nil && school != nil {
			updated.School = school.Name
		} else if err != nil && !errors.Is(err, schoolinfo.ErrSchoolNotFound) {
			s.log.Warn("chat", "school match failed during memory update", map[string]interface{}{"error": err.Error()})
		}
	}
	return updated
}

func renderAnswer(merged *entity.MergedAnswer) string {
	parts := make([]string, 0, len(merged.Fragments)+1)
	for _, f := range merged.Fragments {
		parts = append(parts, f.Text)
	}
	if merged.Degraded {
		parts = append(parts, constant.DegradedNotice)
	}
	return strings.Join(parts, "\n\n")
}

func toCheckpointDTO(cp *entity.Checkpoint) dto.CheckpointDTO {
	return dto.CheckpointDTO{
		Seq:       cp.Seq,
		Memory:    cp.Memory,
		Turns:     cp.Turns,
		Steps:     cp.Steps,
		CreatedAt: cp.CreatedAt,
	}
}
