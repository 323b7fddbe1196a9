package mapper

import (
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/model"
)

type SchoolMapper struct{}

func NewSchoolMapper() *SchoolMapper {
	return &SchoolMapper{}
}

func (m *SchoolMapper) ToEntity(s *model.School) *entity.School {
	if s == nil {
		return nil
	}

	majors := make([]entity.Major, len(s.Majors))
	for i, n := range s.Majors {
		majors[i] = entity.Major{
			Code:        n.Code,
			Name:        n.Name,
			Description: n.Description,
		}
	}

	return &entity.School{
		Id:          s.Id,
		Code:        s.Code,
		Name:        s.Name,
		NameFolded:  s.NameFolded,
		Address:     s.Address,
		Website:     s.Website,
		Description: s.Description,
		Majors:      majors,
	}
}

func (m *SchoolMapper) ToEntities(schools []*model.School) []*entity.School {
	entities := make([]*entity.School, len(schools))
	for i, s := range schools {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
