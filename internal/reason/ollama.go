package reason

import "strings"

// Defaults for the locally hosted Ollama backend. Ollama exposes an
// OpenAI-compatible endpoint under /v1, so the engine reuses the OpenAI
// client with a different base URL.
const (
	DefaultOllamaHost  = "http://localhost:11434"
	DefaultOllamaModel = "llama3.2"
)

// NewOllamaEngine creates an engine backed by a local Ollama server.
func NewOllamaEngine(host, model string) *OpenAIEngine {
	if host == "" {
		host = DefaultOllamaHost
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	base := strings.TrimSuffix(host, "/")
	if !strings.HasSuffix(base, "/v1") {
		base += "/v1"
	}
	return NewCompatibleEngine("ollama", base, "ollama", model)
}
