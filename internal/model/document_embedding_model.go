package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type DocumentEmbedding struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Namespace      string    `gorm:"index;default:documents"`
	Title          string
	Content        string          `gorm:"type:text"`
	Access         string          `gorm:"default:public;index"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt      time.Time
}

func (DocumentEmbedding) TableName() string { return "document_embeddings" }
