package dto

// ConvertRequest asks the server to convert an audio file on its filesystem to MP3.
type ConvertRequest struct {
	InputPath  string `json:"input_path" binding:"required"`
	OutputPath string `json:"output_path" binding:"required"`
}

// ConvertResponse reports the produced file.
type ConvertResponse struct {
	OutputPath  string `json:"output_path"`
	DurationSec int    `json:"duration_sec,omitempty"`
}
