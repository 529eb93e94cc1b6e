package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level repocard configuration. Credentials live here and
// are passed explicitly to the components that need them; nothing below
// this layer reads the environment.
type Config struct {
	// Engine selects the reasoning backend: auto, openai, anthropic,
	// ollama, rules, or mock.
	Engine string `mapstructure:"engine"`

	// Model overrides the selected engine's default model.
	Model string `mapstructure:"model"`

	// ContentBudget is the character budget for the reasoning digest.
	ContentBudget int `mapstructure:"content_budget"`

	// OutputFile is the default card filename.
	OutputFile string `mapstructure:"output_file"`

	// GitHubToken authenticates GitHub API requests. Optional.
	GitHubToken string `mapstructure:"github_token"`

	// OpenAIKey authenticates the OpenAI backend. Optional.
	OpenAIKey string `mapstructure:"openai_key"`

	// AnthropicKey authenticates the Anthropic backend. Optional.
	AnthropicKey string `mapstructure:"anthropic_key"`

	// OllamaHost is the base URL of a local Ollama server.
	OllamaHost string `mapstructure:"ollama_host"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with defaults and environment values applied.
// A .env file in the working directory is loaded first, so tokens can live
// there instead of the shell profile.
func Load(cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("engine", DefaultEngine)
	v.SetDefault("content_budget", DefaultContentBudget)
	v.SetDefault("output_file", DefaultOutputFile)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Environment fills anything the config file left empty.
	if cfg.GitHubToken == "" {
		cfg.GitHubToken = os.Getenv(EnvGitHubToken)
	}
	if cfg.OpenAIKey == "" {
		cfg.OpenAIKey = os.Getenv(EnvOpenAIKey)
	}
	if cfg.AnthropicKey == "" {
		cfg.AnthropicKey = os.Getenv(EnvAnthropicKey)
	}
	if cfg.OllamaHost == "" {
		cfg.OllamaHost = os.Getenv(EnvOllamaHost)
	}

	return &cfg, nil
}

// DBPath returns the full path to the run-history SQLite database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}
