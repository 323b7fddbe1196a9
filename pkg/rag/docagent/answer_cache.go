package docagent

import (
	"time"

	"admission-advisor-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type cacheEntry struct {
	embedding []float32
	result    *Result
}

// AnswerCache is a small semantic cache: a lookup hits when a previous
// question's embedding is close enough to the new one, so paraphrases of
// an already-answered question skip the whole retrieval loop.
type AnswerCache struct {
	store     *cache.Cache
	threshold float64
}

func NewAnswerCache(threshold float64, ttl time.Duration) *AnswerCache {
	if threshold <= 0 {
		threshold = 0.92
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AnswerCache{
		store:     cache.New(ttl, ttl/2),
		threshold: threshold,
	}
}

// Lookup scans live entries for the closest question embedding. Entry
// counts stay small (bounded by TTL), so a linear scan is fine.
func (c *AnswerCache) Lookup(queryEmbed []float32) (*Result, bool) {
	var best *Result
	var bestSim float64

	for _, item := range c.store.Items() {
		entry, ok := item.Object.(*cacheEntry)
		if !ok {
			continue
		}
		sim := embedding.CosineSimilarity(queryEmbed, entry.embedding)
		if sim >= c.threshold && sim > bestSim {
			bestSim = sim
			best = entry.result
		}
	}

	if best == nil {
		return nil, false
	}
	return best, true
}

func (c *AnswerCache) Add(queryEmbed []float32, result *Result) {
	c.store.Set(uuid.NewString(), &cacheEntry{
		embedding: queryEmbed,
		result:    result,
	}, cache.DefaultExpiration)
}

func (c *AnswerCache) Len() int {
	return c.store.ItemCount()
}
