package implementation

import (
	"context"
	"errors"
	"fmt"

	"admission-advisor-be/internal/repository/contract"
	"admission-advisor-be/pkg/store"

	"gorm.io/gorm"
)

type ScoreQueryRepositoryImpl struct {
	db *gorm.DB
}

func NewScoreQueryRepository(db *gorm.DB) contract.ScoreQueryRepository {
	return &ScoreQueryRepositoryImpl{db: db}
}

// Execute runs a read-only query against the lookup view. The caller is
// responsible for validating the statement first.
func (r *ScoreQueryRepositoryImpl) Execute(ctx context.Context, query string) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		// Timeouts are infra failures; anything else (usually a syntax
		// error) goes back verbatim so the repair loop can use it.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, store.ClassifyInfraErr(err)
		}
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	return rows, nil
}
