package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/repository/contract"
)

func newCheckpoint(sessionId, lastUser string) *entity.Checkpoint {
	return &entity.Checkpoint{
		SessionId: sessionId,
		Turns: []entity.TurnRecord{
			{Role: "user", Content: lastUser},
		},
	}
}

func TestAppendAssignsMonotonicSeq(t *testing.T) {
	repo := NewCheckpointRepository()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		cp := newCheckpoint("s1", "turn")
		require.NoError(t, repo.Append(ctx, cp))
		assert.Equal(t, i, cp.Seq)
	}

	// Sessions number independently.
	other := newCheckpoint("s2", "turn")
	require.NoError(t, repo.Append(ctx, other))
	assert.Equal(t, 1, other.Seq)
}

func TestLatest(t *testing.T) {
	repo := NewCheckpointRepository()
	ctx := context.Background()

	_, err := repo.Latest(ctx, "missing")
	assert.True(t, errors.Is(err, contract.ErrCheckpointNotFound))

	require.NoError(t, repo.Append(ctx, newCheckpoint("s1", "first")))
	require.NoError(t, repo.Append(ctx, newCheckpoint("s1", "second")))

	latest, err := repo.Latest(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, latest.Seq)
	assert.Equal(t, "second", latest.Turns[0].Content)
}

func TestRewindIsPureRead(t *testing.T) {
	repo := NewCheckpointRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, newCheckpoint("s1", "first")))
	require.NoError(t, repo.Append(ctx, newCheckpoint("s1", "second")))
	require.NoError(t, repo.Append(ctx, newCheckpoint("s1", "third")))

	cp, err := repo.Rewind(ctx, "s1", 2)
	require.NoError(t, err)
	assert.Equal(t, "second", cp.Turns[0].Content)

	// Rewinding never truncates: the log still holds all three and the
	// next append continues the sequence.
	history, err := repo.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)

	next := newCheckpoint("s1", "fourth")
	require.NoError(t, repo.Append(ctx, next))
	assert.Equal(t, 4, next.Seq)
}

func TestRewindOutOfRange(t *testing.T) {
	repo := NewCheckpointRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, newCheckpoint("s1", "first")))

	for _, seq := range []int{0, -1, 2} {
		_, err := repo.Rewind(ctx, "s1", seq)
		assert.True(t, errors.Is(err, contract.ErrCheckpointNotFound), "seq %d", seq)
	}
}

func TestHistoryInSequenceOrder(t *testing.T) {
	repo := NewCheckpointRepository()
	ctx := context.Background()

	for _, content := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Append(ctx, newCheckpoint("s1", content)))
	}

	history, err := repo.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i, cp := range history {
		assert.Equal(t, i+1, cp.Seq)
	}
}

func TestReturnedCheckpointsAreCopies(t *testing.T) {
	repo := NewCheckpointRepository()
	ctx := context.Background()
	year := 2024

	cp := newCheckpoint("s1", "first")
	cp.Memory = entity.EntityMemory{School: "Học viện Hải quân", Year: &year}
	require.NoError(t, repo.Append(ctx, cp))

	got, err := repo.Latest(ctx, "s1")
	require.NoError(t, err)
	got.Memory.School = "mutated"

	again, err := repo.Latest(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Học viện Hải quân", again.Memory.School)
}

func TestConcurrentAppendsKeepSeqDense(t *testing.T) {
	repo := NewCheckpointRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Append(ctx, newCheckpoint("s1", "turn"))
		}()
	}
	wg.Wait()

	history, err := repo.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 20)
	seen := map[int]bool{}
	for _, cp := range history {
		seen[cp.Seq] = true
	}
	for seq := 1; seq <= 20; seq++ {
		assert.True(t, seen[seq], "seq %d missing", seq)
	}
}
