package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnginesConfig selects which transcription engines are available and which
// one handles requests that don't name an engine.
type EnginesConfig struct {
	DefaultEngine string `yaml:"default_engine"`
	// Model is the model variant whisper_cpp engines default to, unless a
	// per-engine setting overrides it.
	Model   string                  `yaml:"model,omitempty"`
	Engines map[string]EngineConfig `yaml:"engines"`
}

// EngineConfig configures a single transcription engine.
type EngineConfig struct {
	Type    string `yaml:"type"` // whisper_cpp or openai
	Enabled bool   `yaml:"enabled"`
	// Settings carries per-engine overrides. whisper_cpp honors "model",
	// which wins over the config-wide Model.
	Settings map[string]string `yaml:"settings,omitempty"`
}

// LoadEnginesConfig loads the engine configuration from a YAML file.
func LoadEnginesConfig(configPath string) (*EnginesConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config EnginesConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultEnginesConfig is used when no config file is present: the local
// whisper.cpp engine, plus the OpenAI engine when an API key is around.
func DefaultEnginesConfig() *EnginesConfig {
	cfg := &EnginesConfig{
		DefaultEngine: "whisper_cpp",
		Engines: map[string]EngineConfig{
			"whisper_cpp": {Type: "whisper_cpp", Enabled: true},
		},
	}
	if os.Getenv("OPENAI_API_KEY") != "" {
		cfg.Engines["openai"] = EngineConfig{Type: "openai", Enabled: true}
	}
	return cfg
}

func (c *EnginesConfig) setDefaults() {
	if c.DefaultEngine == "" && len(c.Engines) == 1 {
		for name := range c.Engines {
			c.DefaultEngine = name
		}
	}
}

// Validate checks the configuration is usable.
func (c *EnginesConfig) Validate() error {
	if len(c.Engines) == 0 {
		return fmt.Errorf("no engines configured")
	}
	for name, engine := range c.Engines {
		switch engine.Type {
		case "whisper_cpp", "openai":
		default:
			return fmt.Errorf("engine %s has unknown type: %s", name, engine.Type)
		}
	}
	if c.DefaultEngine == "" {
		return fmt.Errorf("default_engine is required when multiple engines are configured")
	}
	engine, ok := c.Engines[c.DefaultEngine]
	if !ok {
		return fmt.Errorf("default_engine %s is not configured", c.DefaultEngine)
	}
	if !engine.Enabled {
		return fmt.Errorf("default_engine %s is disabled", c.DefaultEngine)
	}
	return nil
}
