package implementation

import (
	"context"
	"errors"
	"fmt"

	"admission-advisor-be/internal/entity"
	"admission-advisor-be/internal/mapper"
	"admission-advisor-be/internal/model"
	"admission-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type ChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkMapper
}

func NewChunkRepository(db *gorm.DB) contract.ChunkRepository {
	return &ChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkMapper(),
	}
}

func (r *ChunkRepositoryImpl) toModel(c *entity.Chunk, embedding []float32) *model.LegalChunk {
	return &model.LegalChunk{
		Id:             c.Id,
		Content:        c.Content,
		EmbeddingValue: pgvector.NewVector(embedding),
		Document:       c.Document,
		Chapter:        c.Chapter,
		Article:        c.Article,
		Clause:         c.Clause,
		ParentId:       c.ParentId,
	}
}

func (r *ChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.Chunk, embedding []float32) error {
	m := r.toModel(chunk, embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	chunk.Id = m.Id
	return nil
}

func (r *ChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.Chunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return fmt.Errorf("chunk/embedding count mismatch: %d vs %d", len(chunks), len(embeddings))
	}
	models := make([]*model.LegalChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.toModel(c, embeddings[i])
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		chunks[i].Id = m.Id
	}
	return nil
}

func (r *ChunkRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Chunk, error) {
	var m model.LegalChunk
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ChunkRepositoryImpl) FindParent(ctx context.Context, id uuid.UUID) (*entity.Chunk, error) {
	chunk, err := r.FindById(ctx, id)
	if err != nil || chunk == nil || chunk.ParentId == nil {
		return nil, err
	}
	return r.FindById(ctx, *chunk.ParentId)
}

func (r *ChunkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LegalChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores, filtered by threshold
func (r *ChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
	type result struct {
		model.LegalChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("legal_chunks").
		Select("legal_chunks.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredChunk, len(results))
	for i, res := range results {
		c := r.mapper.ToEntity(&res.LegalChunk)
		c.Score = res.Similarity
		scored[i] = &contract.ScoredChunk{
			Chunk:      c,
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
