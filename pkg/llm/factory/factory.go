package factory

import (
	"fmt"

	"nursing-assistant-be/pkg/llm"
	"nursing-assistant-be/pkg/llm/gemini"
	"nursing-assistant-be/pkg/llm/ollama"
)

func NewLLMProvider(providerType, modelName, ollamaBaseURL, geminiApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if geminiApiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(geminiApiKey, modelName), nil
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
