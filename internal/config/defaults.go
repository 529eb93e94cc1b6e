// Package config provides configuration loading and defaults for repocard.
package config

// DefaultConfigDir is the default location for repocard configuration.
const DefaultConfigDir = "~/.config/repocard"

// DefaultDBName is the filename for the run-history SQLite database.
const DefaultDBName = "repocard.db"

// DefaultOutputFile is the card filename written by init and remote.
const DefaultOutputFile = "repocard.yaml"

// DefaultEngine is the reasoning engine used when none is configured.
const DefaultEngine = "auto"

// DefaultContentBudget is the character budget for the reasoning digest.
const DefaultContentBudget = 10000

// Environment variable names read during Load. Flags override these.
const (
	EnvGitHubToken  = "GITHUB_TOKEN"
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
	EnvOllamaHost   = "OLLAMA_HOST"
)
