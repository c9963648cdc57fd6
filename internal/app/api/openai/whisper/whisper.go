package whisper

import (
	"context"
	"os"

	"github.com/sashabaranov/go-openai"

	apperrors "memo2text/internal/app/errors"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcript uses the OpenAI API for remote transcription. The hosted service
// picks its own model, so the local model variants do not apply here.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	if _, err := os.Stat(inputFilePath); err != nil {
		return "", apperrors.NotFound("audio file not found: %s", inputFilePath)
	}

	ctx := context.Background()

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: inputFilePath,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", apperrors.Processing(err, "createTranscription failed")
	}

	return resp.Text, nil
}
