package factory

import (
	"fmt"
	"time"

	"admission-advisor-be/pkg/llm"
	"admission-advisor-be/pkg/llm/ollama"
)

// NewLLMProvider creates the configured completion backend.
// Currently only "ollama" is supported; the indirection keeps callers
// decoupled so a hosted provider can be slotted in later.
func NewLLMProvider(providerType, modelName, baseURL string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama", "":
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", providerType)
	}
}
