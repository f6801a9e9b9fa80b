package mapper

import (
	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type DocumentEmbeddingMapper struct{}

func NewDocumentEmbeddingMapper() *DocumentEmbeddingMapper {
	return &DocumentEmbeddingMapper{}
}

func (m *DocumentEmbeddingMapper) ToEntity(r *model.DocumentEmbedding) *entity.DocumentEmbedding {
	return &entity.DocumentEmbedding{
		Id:             r.Id,
		Namespace:      r.Namespace,
		Title:          r.Title,
		Content:        r.Content,
		Access:         r.Access,
		EmbeddingValue: r.EmbeddingValue.Slice(),
		CreatedAt:      r.CreatedAt,
	}
}

func (m *DocumentEmbeddingMapper) ToModel(e *entity.DocumentEmbedding) *model.DocumentEmbedding {
	return &model.DocumentEmbedding{
		Id:             e.Id,
		Namespace:      e.Namespace,
		Title:          e.Title,
		Content:        e.Content,
		Access:         e.Access,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}
