package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentEmbedding is one embedded knowledge-base passage. Access mirrors
// record visibility: guest callers only ever see public passages.
type DocumentEmbedding struct {
	Id             uuid.UUID
	Namespace      string
	Title          string
	Content        string
	Access         string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
