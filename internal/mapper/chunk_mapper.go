package mapper

import (
	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/model"
)

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func (m *ChunkMapper) ToEntity(c *model.LegalChunk) *entity.Chunk {
	if c == nil {
		return nil
	}

	return &entity.Chunk{
		Id:       c.Id,
		Content:  c.Content,
		Document: c.Document,
		Chapter:  c.Chapter,
		Article:  c.Article,
		Clause:   c.Clause,
		ParentId: c.ParentId,
	}
}

func (m *ChunkMapper) ToEntities(chunks []*model.LegalChunk) []*entity.Chunk {
	entities := make([]*entity.Chunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
