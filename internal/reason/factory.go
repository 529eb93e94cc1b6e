package reason

// Credentials carries the backend configuration resolved by the caller.
// Engine selection never reads the environment itself; credentials flow in
// explicitly through this struct.
type Credentials struct {
	OpenAIKey    string
	AnthropicKey string
	OllamaHost   string

	// Model overrides the engine's default model when non-empty.
	Model string
}

// Engine names accepted by Select.
const (
	EngineAuto      = "auto"
	EngineMock      = "mock"
	EngineRules     = "rules"
	EngineOpenAI    = "openai"
	EngineAnthropic = "anthropic"
	EngineOllama    = "ollama"
)

// Select builds the engine for the given name. "auto" picks the first
// hosted backend with a credential present, preferring OpenAI, then
// Anthropic, then the rules engine. A hosted engine requested without a
// credential, or an unrecognized name, falls back to the rules engine.
// Selection never fails.
func Select(name string, creds Credentials) Engine {
	switch name {
	case EngineMock:
		return MockEngine{}
	case EngineRules:
		return RulesEngine{}
	case EngineOpenAI:
		if creds.OpenAIKey == "" {
			return RulesEngine{}
		}
		return NewOpenAIEngine(creds.OpenAIKey, creds.Model)
	case EngineAnthropic:
		if creds.AnthropicKey == "" {
			return RulesEngine{}
		}
		return NewAnthropicEngine(creds.AnthropicKey, creds.Model)
	case EngineOllama:
		return NewOllamaEngine(creds.OllamaHost, creds.Model)
	case EngineAuto:
		switch {
		case creds.OpenAIKey != "":
			return NewOpenAIEngine(creds.OpenAIKey, creds.Model)
		case creds.AnthropicKey != "":
			return NewAnthropicEngine(creds.AnthropicKey, creds.Model)
		default:
			return RulesEngine{}
		}
	default:
		return RulesEngine{}
	}
}

// Availability describes one engine for the engines listing command.
type Availability struct {
	Name       string `json:"name"`
	Ready      bool   `json:"ready"`
	Credential string `json:"credential"`
	Note       string `json:"note"`
}

// ListAvailability reports each engine and whether its credential is
// present. The mock and rules engines are always ready; ollama readiness
// only reflects configuration, not server reachability.
func ListAvailability(creds Credentials) []Availability {
	return []Availability{
		{Name: EngineOpenAI, Ready: creds.OpenAIKey != "", Credential: "OPENAI_API_KEY", Note: "hosted, best quality"},
		{Name: EngineAnthropic, Ready: creds.AnthropicKey != "", Credential: "ANTHROPIC_API_KEY", Note: "hosted, best quality"},
		{Name: EngineOllama, Ready: true, Credential: "OLLAMA_HOST (optional)", Note: "local model server"},
		{Name: EngineRules, Ready: true, Credential: "none", Note: "rule-based, works offline"},
		{Name: EngineMock, Ready: true, Credential: "none", Note: "fixed templates, for tests"},
	}
}
