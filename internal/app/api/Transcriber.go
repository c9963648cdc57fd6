package api

// Model variant labels understood by the transcription engines. The label is
// passed through as-is; an unknown label fails inside the engine.
const (
	ModelTiny   = "tiny"
	ModelBase   = "base"
	ModelSmall  = "small"
	ModelMedium = "medium"
	ModelLarge  = "large"

	DefaultModel = ModelBase
)

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(inputFilePath string) (string, error)
}

// ModelTranscriber is implemented by engines that can select a model variant per call.
type ModelTranscriber interface {
	Transcriber
	TranscriptWithModel(inputFilePath string, model string) (string, error)
}
