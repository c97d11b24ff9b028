package config

import (
	"fmt"
	"slices"
)

// Storage backends.
const (
	StorageMemory    = "memory"
	StorageFirestore = "firestore"
)

// LLM providers.
const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
	ProviderVertex = "vertex"
)

// Config is the root service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	LLM     LLMConfig     `yaml:"llm"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port int    `yaml:"port" env:"SERVER_PORT" env-default:"8001"`
}

// StorageConfig selects and configures the document store backend.
type StorageConfig struct {
	Backend      string `yaml:"backend"     env:"STORAGE_BACKEND" env-default:"memory"`
	GCPProjectID string `yaml:"gcp_project" env:"GCP_PROJECT"`
}

// LLMConfig selects and configures the chat provider.
type LLMConfig struct {
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"mock"`

	OpenAIAPIKey string `yaml:"openai_api_key" env:"OPENAI_API_KEY"`
	OpenAIModel  string `yaml:"openai_model"   env:"OPENAI_MODEL"   env-default:"gpt-4o"`
	MaxTokens    int    `yaml:"max_tokens"     env:"LLM_MAX_TOKENS" env-default:"1000"`

	GCPProjectID string `yaml:"gcp_project"  env:"GCP_PROJECT"`
	GCPLocation  string `yaml:"gcp_location" env:"GCP_LOCATION" env-default:"us-central1"`
	VertexModel  string `yaml:"vertex_model" env:"VERTEX_MODEL" env-default:"gemini-2.5-flash"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Validate checks cross-field requirements that tags cannot express.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}

	if !slices.Contains([]string{StorageMemory, StorageFirestore}, c.Storage.Backend) {
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == StorageFirestore && c.Storage.GCPProjectID == "" {
		return fmt.Errorf("GCP_PROJECT is required for the firestore backend")
	}

	if !slices.Contains([]string{ProviderMock, ProviderOpenAI, ProviderVertex}, c.LLM.Provider) {
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if c.LLM.Provider == ProviderOpenAI && c.LLM.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
	}
	if c.LLM.Provider == ProviderVertex && c.LLM.GCPProjectID == "" {
		return fmt.Errorf("GCP_PROJECT is required for the vertex provider")
	}

	return nil
}
