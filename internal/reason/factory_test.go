package reason

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		engine   string
		creds    Credentials
		wantName string
	}{
		{"mock", EngineMock, Credentials{}, "mock"},
		{"rules", EngineRules, Credentials{}, "rules"},
		{"openai with key", EngineOpenAI, Credentials{OpenAIKey: "sk-x"}, "openai"},
		{"openai without key degrades", EngineOpenAI, Credentials{}, "rules"},
		{"anthropic with key", EngineAnthropic, Credentials{AnthropicKey: "sk-y"}, "anthropic"},
		{"anthropic without key degrades", EngineAnthropic, Credentials{}, "rules"},
		{"ollama needs no key", EngineOllama, Credentials{}, "ollama"},
		{"auto prefers openai", EngineAuto, Credentials{OpenAIKey: "a", AnthropicKey: "b"}, "openai"},
		{"auto falls to anthropic", EngineAuto, Credentials{AnthropicKey: "b"}, "anthropic"},
		{"auto without keys", EngineAuto, Credentials{}, "rules"},
		{"unknown name never fails", "quantum", Credentials{}, "rules"},
		{"empty name", "", Credentials{}, "rules"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Select(tt.engine, tt.creds)
			if e == nil {
				t.Fatal("Select returned nil")
			}
			if e.Name() != tt.wantName {
				t.Errorf("Select(%q).Name() = %q, want %q", tt.engine, e.Name(), tt.wantName)
			}
		})
	}
}

func TestListAvailability(t *testing.T) {
	avail := ListAvailability(Credentials{OpenAIKey: "sk-x"})
	byName := make(map[string]Availability, len(avail))
	for _, a := range avail {
		byName[a.Name] = a
	}

	if !byName[EngineOpenAI].Ready {
		t.Error("openai should be ready when its key is set")
	}
	if byName[EngineAnthropic].Ready {
		t.Error("anthropic should not be ready without a key")
	}
	for _, always := range []string{EngineRules, EngineMock, EngineOllama} {
		if !byName[always].Ready {
			t.Errorf("%s should always be ready", always)
		}
	}
}
