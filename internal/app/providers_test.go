package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memo2text/internal/app/api/whisper_cpp"
	"memo2text/internal/config"
)

func testSettings(t *testing.T) *config.Settings {
	t.Helper()
	return &config.Settings{
		WhisperBinary:   "/opt/whisper/main",
		WhisperModelDir: "/opt/whisper/models",
		DataDir:         t.TempDir(),
	}
}

func writeEnginesConfig(t *testing.T, dataDir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "engines.yaml"), []byte(content), 0644))
}

func defaultLocalEngine(t *testing.T, settings *config.Settings) *whisper_cpp.LocalTranscriber {
	t.Helper()
	registry, err := provideRegistry(settings)
	require.NoError(t, err)

	engine, err := registry.Default()
	require.NoError(t, err)

	lt, ok := engine.(*whisper_cpp.LocalTranscriber)
	require.True(t, ok)
	return lt
}

func TestProvideRegistryUsesConfiguredModel(t *testing.T) {
	settings := testSettings(t)
	writeEnginesConfig(t, settings.DataDir, `
default_engine: whisper_cpp
model: tiny
engines:
  whisper_cpp:
    type: whisper_cpp
    enabled: true
`)

	lt := defaultLocalEngine(t, settings)
	assert.Equal(t, "tiny", lt.Model())
}

func TestProvideRegistryEngineSettingOverridesModel(t *testing.T) {
	settings := testSettings(t)
	writeEnginesConfig(t, settings.DataDir, `
default_engine: whisper_cpp
model: tiny
engines:
  whisper_cpp:
    type: whisper_cpp
    enabled: true
    settings:
      model: small
`)

	lt := defaultLocalEngine(t, settings)
	assert.Equal(t, "small", lt.Model())
}

func TestProvideRegistryFallsBackToEnvModel(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	// No engines.yaml in the data dir, so the environment-driven defaults apply.
	settings := testSettings(t)
	settings.WhisperModel = "medium"

	lt := defaultLocalEngine(t, settings)
	assert.Equal(t, "medium", lt.Model())
}
