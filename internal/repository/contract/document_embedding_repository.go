package contract

import (
	"context"

	"nursing-assistant-be/internal/entity"
	"nursing-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredPassage is one similarity-search hit with its cosine similarity
// (1.0 = identical).
type ScoredPassage struct {
	Id         uuid.UUID
	Title      string
	Content    string
	Access     string
	Similarity float64
}

type DocumentEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.DocumentEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.DocumentEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the topK nearest passages within the
	// namespace whose similarity exceeds threshold, relevance-descending.
	// publicOnly restricts to access = public (guest callers).
	SearchSimilarWithScore(ctx context.Context, embedding []float32, topK int, namespace string, publicOnly bool, threshold float64) ([]*ScoredPassage, error)
}
