package implementation

import (
	"context"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/model"
	"admission-advisor-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SQLExampleRepositoryImpl struct {
	db *gorm.DB
}

func NewSQLExampleRepository(db *gorm.DB) contract.SQLExampleRepository {
	return &SQLExampleRepositoryImpl{db: db}
}

func (r *SQLExampleRepositoryImpl) Create(ctx context.Context, example *entity.SQLExample, embedding []float32) error {
	m := &model.SQLExample{
		Question:       example.Question,
		SQL:            example.SQL,
		EmbeddingValue: pgvector.NewVector(embedding),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *SQLExampleRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SQLExample{}).Count(&count).Error
	return count, err
}

func (r *SQLExampleRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*entity.SQLExample, error) {
	if limit <= 0 {
		limit = 3
	}

	type result struct {
		model.SQLExample
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("sql_examples").
		Select("sql_examples.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	examples := make([]*entity.SQLExample, len(results))
	for i, res := range results {
		examples[i] = &entity.SQLExample{
			Question: res.Question,
			SQL:      res.SQL,
			Score:    res.Similarity,
		}
	}
	return examples, nil
}
