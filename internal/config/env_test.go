package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsReadsEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-key-long-enough-0000")
	t.Setenv("WHISPER_CPP_BINARY", "/opt/whisper/main")
	t.Setenv("WHISPER_CPP_MODEL_DIR", "/opt/whisper/models")
	t.Setenv("WHISPER_MODEL", "small")
	t.Setenv("M2T_DATA_DIR", "/var/lib/m2t")

	s, err := GetSettings()
	require.NoError(t, err)

	assert.Equal(t, "/opt/whisper/main", s.WhisperBinary)
	assert.Equal(t, "/opt/whisper/models", s.WhisperModelDir)
	assert.Equal(t, "small", s.WhisperModel)
	assert.Equal(t, "/var/lib/m2t", s.DataDir)
}

func TestGetSettingsRejectsBadAPIKey(t *testing.T) {
	t.Setenv("M2T_DATA_DIR", t.TempDir())

	tests := []struct {
		name string
		key  string
	}{
		{"wrong prefix", "api-key-without-sk-prefix"},
		{"too short", "sk-short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tt.key)
			_, err := GetSettings()
			assert.Error(t, err)
		})
	}
}

func TestGetSettingsAllowsMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("M2T_DATA_DIR", t.TempDir())

	s, err := GetSettings()
	require.NoError(t, err)
	assert.Empty(t, s.OpenAIKey)
}

func TestSettingsDerivedPaths(t *testing.T) {
	s := &Settings{DataDir: "/data"}

	assert.Equal(t, filepath.Join("/data", "transcription.db"), s.HistoryDBPath())
	assert.Equal(t, filepath.Join("/data", "last_timestamp.txt"), s.CheckpointPath())
	assert.Equal(t, filepath.Join("/data", "mp3"), s.WorkDir())
}
