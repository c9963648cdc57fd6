package dto

// CreateTranscriptionRequest represents the request to transcribe an audio file.
// Model is forwarded to the engine untouched; the engine rejects labels it
// does not know.
type CreateTranscriptionRequest struct {
	FilePath string `json:"file_path" binding:"required"`
	Engine   string `json:"engine,omitempty"`
	Model    string `json:"model,omitempty"`
}

// TranscriptionResponse carries the transcribed text.
type TranscriptionResponse struct {
	Text   string `json:"text"`
	Engine string `json:"engine"`
	Model  string `json:"model,omitempty"`
}
