package llm

import "testing"

func TestNewOllamaProvider_Defaults(t *testing.T) {
	p, err := NewOllamaProvider(OllamaConfig{Model: "llama2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "llama2" {
		t.Fatalf("expected 'llama2', got %q", p.ModelID())
	}
}

func TestNewOllamaProvider_CustomBaseURL(t *testing.T) {
	p, err := NewOllamaProvider(OllamaConfig{
		Model:   "mistral",
		BaseURL: "http://127.0.0.1:9999/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mistral" {
		t.Fatalf("expected 'mistral', got %q", p.ModelID())
	}
}

func TestConfig_ValidateOllamaNeedsNoKey(t *testing.T) {
	cfg := Config{Provider: "ollama"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("ollama should validate without a key: %v", err)
	}
}
