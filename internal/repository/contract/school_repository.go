package contract

import (
	"context"

	"admission-advisor-be/internal/entity"
)

type SchoolRepository interface {
	// FindAllActive returns active schools with their majors preloaded
	FindAllActive(ctx context.Context) ([]*entity.School, error)
}
