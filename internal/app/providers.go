package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"memo2text/internal/app/api"
	openaiclient "memo2text/internal/app/api/openai"
	"memo2text/internal/app/api/openai/whisper"
	"memo2text/internal/app/api/provider"
	"memo2text/internal/app/api/whisper_cpp"
	appconfig "memo2text/internal/app/config"
	"memo2text/internal/app/logging"
	"memo2text/internal/app/repository"
	"memo2text/internal/app/repository/sqlite"
	"memo2text/internal/app/util/files"
	"memo2text/internal/config"
)

// provideSettings loads environment configuration.
func provideSettings() (*config.Settings, error) {
	return config.InitializeConfig()
}

// provideLogger builds the pipeline logger. M2T_DEBUG switches to the
// human-readable development encoder.
func provideLogger() *zap.Logger {
	return logging.MustNewLogger(os.Getenv("M2T_DEBUG") != "")
}

// provideLocalTranscriber builds the whisper.cpp engine from settings. A
// non-empty model overrides the WHISPER_MODEL default.
func provideLocalTranscriber(settings *config.Settings, model string) (api.Transcriber, error) {
	if settings.WhisperBinary == "" {
		return nil, fmt.Errorf("WHISPER_CPP_BINARY environment variable must be set")
	}
	if settings.WhisperModelDir == "" {
		return nil, fmt.Errorf("WHISPER_CPP_MODEL_DIR environment variable must be set")
	}
	if model == "" {
		model = settings.WhisperModel
	}
	return whisper_cpp.NewLocalTranscriber(settings.WhisperBinary, settings.WhisperModelDir, model), nil
}

// provideRemoteTranscriber builds the OpenAI engine, requires OPENAI_API_KEY.
func provideRemoteTranscriber() api.Transcriber {
	return whisper.NewRemoteTranscriber(openaiclient.GetClient())
}

// provideRegistry builds the engine registry from engines.yaml when present
// in the data dir, falling back to the environment-driven defaults.
func provideRegistry(settings *config.Settings) (*provider.Registry, error) {
	cfgPath := filepath.Join(settings.DataDir, "engines.yaml")
	var cfg *appconfig.EnginesConfig
	if _, err := os.Stat(cfgPath); err == nil {
		cfg, err = appconfig.LoadEnginesConfig(cfgPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = appconfig.DefaultEnginesConfig()
	}

	registry := provider.NewRegistry()
	for name, engineCfg := range cfg.Engines {
		if !engineCfg.Enabled {
			continue
		}

		var engine api.Transcriber
		var err error
		switch engineCfg.Type {
		case "whisper_cpp":
			// Per-engine setting wins over the config-wide model.
			model := engineCfg.Settings["model"]
			if model == "" {
				model = cfg.Model
			}
			engine, err = provideLocalTranscriber(settings, model)
		case "openai":
			engine = provideRemoteTranscriber()
		}
		if err != nil {
			return nil, fmt.Errorf("engine %s: %w", name, err)
		}
		if err := registry.Register(name, engine); err != nil {
			return nil, err
		}
	}

	if cfg.DefaultEngine != "" {
		if err := registry.SetDefault(cfg.DefaultEngine); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// provideDefaultTranscriber resolves the registry's default engine.
func provideDefaultTranscriber(registry *provider.Registry) (api.Transcriber, error) {
	return registry.Default()
}

// provideTranscriptionDAO opens the sqlite history database under the data dir.
func provideTranscriptionDAO(settings *config.Settings) (repository.TranscriptionDAO, error) {
	if err := files.EnsureDir(settings.DataDir); err != nil {
		return nil, err
	}
	return sqlite.NewSQLiteDB(settings.HistoryDBPath())
}
