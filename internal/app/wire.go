//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"memo2text/internal/app/api/provider"
	"memo2text/internal/app/converter"
)

// InitializeConverter assembles the batch pipeline: settings, engine registry,
// default engine, history DAO and logger.
func InitializeConverter() (*converter.Converter, error) {
	wire.Build(
		provideSettings,
		provideLogger,
		provideRegistry,
		provideDefaultTranscriber,
		provideTranscriptionDAO,
		converter.NewConverter,
	)
	return nil, nil
}

// InitializeRegistry assembles just the engine registry, for the API server
// and the one-shot transcribe command.
func InitializeRegistry() (*provider.Registry, error) {
	wire.Build(
		provideSettings,
		provideRegistry,
	)
	return nil, nil
}
