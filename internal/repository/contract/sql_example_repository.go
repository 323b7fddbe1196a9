package contract

import (
	"context"

	"admission-advisor-be/internal/entity"
)

type SQLExampleRepository interface {
	Create(ctx context.Context, example *entity.SQLExample, embedding []float32) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilar returns the examples closest to the query embedding,
	// filtered by similarity threshold
	SearchSimilar(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*entity.SQLExample, error)
}
