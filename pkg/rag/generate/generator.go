package generate

import (
	"context"
	"fmt"

	"nursing-assistant-be/internal/constant"
	"nursing-assistant-be/internal/pkg/logger"
	"nursing-assistant-be/pkg/llm"
)

// Generator is the outermost resilience layer of the pipeline: it tries an
// ordered chain of model identifiers and always resolves to some text. It
// never returns an error and never panics past this boundary.
type Generator struct {
	provider llm.LLMProvider
	models   []string
	logger   logger.ILogger
}

func NewGenerator(provider llm.LLMProvider, models []string, log logger.ILogger) *Generator {
	if len(models) == 0 {
		models = constant.DefaultGenerationModels
	}
	return &Generator{
		provider: provider,
		models:   models,
		logger:   log,
	}
}

// Generate builds the instruction prompt from the context blob and query,
// then walks the model fallback chain. The first success wins; if every
// model fails, the fixed apology is returned.
func (g *Generator) Generate(ctx context.Context, contextBlob, query string) string {
	prompt := fmt.Sprintf(constant.GenerationPromptTemplate, contextBlob, query)

	for _, model := range g.models {
		reply, err := g.provider.Generate(ctx, prompt, llm.WithModel(model))
		if err != nil {
			g.logger.Warn("response-generator", "model attempt failed", map[string]interface{}{
				"model": model,
				"error": err.Error(),
			})
			continue
		}
		return reply
	}

	g.logger.Error("response-generator", "all generation models failed", map[string]interface{}{
		"models": g.models,
	})
	return constant.ChatApologyMessage
}
