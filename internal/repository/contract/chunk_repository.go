package contract

import (
	"context"

	"admission-advisor-be/internal/entity"

	"github.com/google/uuid"
)

// ScoredChunk wraps a chunk with its cosine similarity to the query
type ScoredChunk struct {
	Chunk      *entity.Chunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type ChunkRepository interface {
	Create(ctx context.Context, chunk *entity.Chunk, embedding []float32) error
	CreateBulk(ctx context.Context, chunks []*entity.Chunk, embeddings [][]float32) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Chunk, error)
	// FindParent returns the parent chunk in the document hierarchy, nil at the root
	FindParent(ctx context.Context, id uuid.UUID) (*entity.Chunk, error)
	Count(ctx context.Context) (int64, error)
	// SearchSimilarWithScore returns chunks with similarity >= threshold, best first
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredChunk, error)
}
