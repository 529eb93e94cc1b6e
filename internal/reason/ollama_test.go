package reason

import "testing"

func TestNewOllamaEngine_Defaults(t *testing.T) {
	e := NewOllamaEngine("", "")
	if e.Name() != "ollama" {
		t.Errorf("name = %q, want ollama", e.Name())
	}
	if e.model != DefaultOllamaModel {
		t.Errorf("model = %q, want default", e.model)
	}
}

func TestNewOllamaEngine_ModelOverride(t *testing.T) {
	e := NewOllamaEngine("http://remote:11434/", "qwen2.5-coder")
	if e.model != "qwen2.5-coder" {
		t.Errorf("model = %q", e.model)
	}
}
