package llm

const defaultOllamaBaseURL = "http://localhost:11434/v1"

// OllamaProvider wraps OpenAIProvider targeting a local Ollama runtime.
// Ollama exposes an OpenAI-compatible API, so the underlying SDK is reused.
type OllamaProvider struct {
	*OpenAIProvider
}

// NewOllamaProvider creates a provider targeting a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	oaiCfg := OpenAIConfig{
		// Ollama ignores the key but the SDK requires a non-empty header value.
		APIKey:  "ollama",
		Model:   cfg.Model,
		BaseURL: baseURL,
	}

	inner, err := newOpenAIProviderRaw(oaiCfg)
	if err != nil {
		return nil, err
	}

	return &OllamaProvider{OpenAIProvider: inner}, nil
}
