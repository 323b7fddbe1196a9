package contract

import (
	"context"

	"admission-advisor-be/internal/entity"
)

type IntentRouteRepository interface {
	Create(ctx context.Context, example *entity.RouteExample, embedding []float32) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	// SearchSimilar returns the labeled examples closest to the query embedding
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.RouteExample, error)
}
