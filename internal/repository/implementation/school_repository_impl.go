package implementation

import (
	"context"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/mapper"
	"admission-advisor-be/internal/model"
	"admission-advisor-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SchoolRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchoolMapper
}

func NewSchoolRepository(db *gorm.DB) contract.SchoolRepository {
	return &SchoolRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchoolMapper(),
	}
}

func (r *SchoolRepositoryImpl) FindAllActive(ctx context.Context) ([]*entity.School, error) {
	var models []*model.School
	err := r.db.WithContext(ctx).
		Preload("Majors", "active = ?", true).
		Where("active = ?", true).
		Order("ten_truong").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
