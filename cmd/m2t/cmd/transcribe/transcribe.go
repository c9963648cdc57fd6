package transcribe

import (
	"fmt"

	"github.com/spf13/cobra"

	"memo2text/internal/app"
	"memo2text/internal/app/api"
)

var filePath string
var modelName string
var engineName string

func init() {
	Cmd.Flags().StringVarP(&filePath, "file", "f", "",
		"audio file to transcribe")
	Cmd.Flags().StringVarP(&modelName, "model", "m", "",
		"model variant: tiny, base, small, medium or large (default base)")
	Cmd.Flags().StringVarP(&engineName, "engine", "e", "",
		"transcription engine, defaults to the configured default")

	Cmd.MarkFlagRequired("file")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe an audio file to text",
	Long: `Transcribe an audio file to text and print the result.

The model is loaded fresh on every invocation; larger variants are slower
but more accurate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := app.InitializeRegistry()
		if err != nil {
			return err
		}

		var engine api.Transcriber
		if engineName != "" {
			engine, err = registry.Get(engineName)
		} else {
			engine, err = registry.Default()
		}
		if err != nil {
			return err
		}

		var text string
		if mt, ok := engine.(api.ModelTranscriber); ok && modelName != "" {
			text, err = mt.TranscriptWithModel(filePath, modelName)
		} else {
			text, err = engine.Transcript(filePath)
		}
		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}
