package vector

import (
	"context"
	"strings"
	"time"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/internal/repository/unitofwork"
	"nursing-assistant-be/pkg/embedding"
)

// Config carries the tunable search parameters. Threshold and top-k have
// shifted between deployments, so they live in configuration rather than
// in code.
type Config struct {
	Namespace string
	TopK      int
	Threshold float64
}

func DefaultConfig() Config {
	return Config{
		Namespace: "documents",
		TopK:      3,
		Threshold: 0.60,
	}
}

// Retriever embeds the query and runs a similarity search over the document
// index. Every failure path degrades to an empty string; this component
// never surfaces an error to the pipeline.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	config   Config
	logger   logger.ILogger
	timeout  time.Duration
}

func NewRetriever(embedder embedding.EmbeddingProvider, config Config, log logger.ILogger, timeout time.Duration) *Retriever {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Retriever{
		embedder: embedder,
		config:   config,
		logger:   log,
		timeout:  timeout,
	}
}

// Fetch returns the newline-joined text of matched passages in
// relevance-descending order, or empty string when nothing qualifies.
// Guests only receive public passages.
func (r *Retriever) Fetch(ctx context.Context, uow unitofwork.UnitOfWork, query string, role string) string {
	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	embeddingRes, err := r.embedder.Generate(cctx, query, "retrieval_query")
	if err != nil {
		r.logger.Warn("vector-retriever", "embedding generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}

	publicOnly := role != constant.RoleStaff
	passages, err := uow.DocumentEmbeddingRepository().SearchSimilarWithScore(
		cctx,
		embeddingRes.Embedding.Values,
		r.config.TopK,
		r.config.Namespace,
		publicOnly,
		r.config.Threshold,
	)
	if err != nil {
		r.logger.Warn("vector-retriever", "similarity search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}

	texts := make([]string, 0, len(passages))
	for _, p := range passages {
		if p.Content == "" {
			continue
		}
		texts = append(texts, p.Content)
	}
	return strings.Join(texts, "\n")
}
