package embedding

import "context"

// EmbeddingProvider turns text into a numeric vector. Implementations are
// thin HTTP clients with bounded timeouts; the retrieval layer treats any
// failure as "no embedding available" and degrades.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) (*EmbeddingResponse, error)
}

type EmbeddingResponseEmbedding struct {
	Values []float32 `json:"values"`
}

type EmbeddingResponse struct {
	Embedding EmbeddingResponseEmbedding `json:"embedding"`
}
