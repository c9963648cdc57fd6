package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Settings holds everything the tool reads from the environment.
type Settings struct {
	OpenAIKey       string
	WhisperBinary   string
	WhisperModelDir string
	// WhisperModel is the default model variant (tiny/base/small/medium/large).
	WhisperModel string
	// DataDir holds the history database, checkpoint file and work files.
	DataDir string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are fine, system-wide environment variables still apply.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetSettings reads and validates the tool settings from environment variables.
func GetSettings() (*Settings, error) {
	s := &Settings{
		OpenAIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		WhisperBinary:   strings.TrimSpace(os.Getenv("WHISPER_CPP_BINARY")),
		WhisperModelDir: strings.TrimSpace(os.Getenv("WHISPER_CPP_MODEL_DIR")),
		WhisperModel:    strings.TrimSpace(os.Getenv("WHISPER_MODEL")),
		DataDir:         strings.TrimSpace(os.Getenv("M2T_DATA_DIR")),
	}

	if s.OpenAIKey != "" {
		if !strings.HasPrefix(s.OpenAIKey, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(s.OpenAIKey) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if s.DataDir == "" {
		root, err := GetProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("M2T_DATA_DIR not set and project root not found: %w", err)
		}
		s.DataDir = filepath.Join(root, "data")
	}

	return s, nil
}

// HistoryDBPath returns the sqlite history database location.
func (s *Settings) HistoryDBPath() string {
	return filepath.Join(s.DataDir, "transcription.db")
}

// CheckpointPath returns the pipeline watermark file location.
func (s *Settings) CheckpointPath() string {
	return filepath.Join(s.DataDir, "last_timestamp.txt")
}

// WorkDir returns where intermediate mp3 files are written.
func (s *Settings) WorkDir() string {
	return filepath.Join(s.DataDir, "mp3")
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads the environment and returns the validated settings.
func InitializeConfig() (*Settings, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	settings, err := GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}
