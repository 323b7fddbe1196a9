package implementation

import (
	"context"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/model"
	"admission-advisor-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type IntentRouteRepositoryImpl struct {
	db *gorm.DB
}

func NewIntentRouteRepository(db *gorm.DB) contract.IntentRouteRepository {
	return &IntentRouteRepositoryImpl{db: db}
}

func (r *IntentRouteRepositoryImpl) Create(ctx context.Context, example *entity.RouteExample, embedding []float32) error {
	m := &model.IntentRoute{
		Route:          example.Route,
		Example:        example.Example,
		Response:       example.Response,
		EmbeddingValue: pgvector.NewVector(embedding),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *IntentRouteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.IntentRoute{}).Count(&count).Error
	return count, err
}

func (r *IntentRouteRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.IntentRoute{}).Error
}

func (r *IntentRouteRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.RouteExample, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.IntentRoute
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("intent_routes").
		Select("intent_routes.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	examples := make([]*entity.RouteExample, len(results))
	for i, res := range results {
		examples[i] = &entity.RouteExample{
			Route:    res.Route,
			Example:  res.Example,
			Response: res.Response,
			Score:    res.Similarity,
		}
	}
	return examples, nil
}
