package docagent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerCacheLookup(t *testing.T) {
	cache := NewAnswerCache(0.92, time.Minute)

	stored := &Result{Answer: "Tiêu chuẩn chiều cao 1m65."}
	cache.Add([]float32{1, 0, 0}, stored)

	// Identical vector: similarity 1.0.
	got, ok := cache.Lookup([]float32{1, 0, 0})
	require.True(t, ok)
	assert.Equal(t, stored.Answer, got.Answer)

	// Near-identical paraphrase stays above the threshold.
	got, ok = cache.Lookup([]float32{0.99, 0.05, 0})
	require.True(t, ok)
	assert.Equal(t, stored.Answer, got.Answer)

	// Orthogonal query misses.
	_, ok = cache.Lookup([]float32{0, 1, 0})
	assert.False(t, ok)
}

func TestAnswerCachePicksBestMatch(t *testing.T) {
	cache := NewAnswerCache(0.9, time.Minute)
	cache.Add([]float32{1, 0.3, 0}, &Result{Answer: "gần"})
	cache.Add([]float32{1, 0, 0}, &Result{Answer: "đúng"})

	got, ok := cache.Lookup([]float32{1, 0, 0})
	require.True(t, ok)
	assert.Equal(t, "đúng", got.Answer)
}

func TestAnswerCacheExpiry(t *testing.T) {
	cache := NewAnswerCache(0.92, 10*time.Millisecond)
	cache.Add([]float32{1, 0, 0}, &Result{Answer: "x"})

	time.Sleep(30 * time.Millisecond)

	_, ok := cache.Lookup([]float32{1, 0, 0})
	assert.False(t, ok)
}
