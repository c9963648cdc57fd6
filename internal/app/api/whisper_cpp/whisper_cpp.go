package whisper_cpp

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"memo2text/internal/app/api"
	"memo2text/internal/app/audio"
	apperrors "memo2text/internal/app/errors"
	"memo2text/internal/app/util/files"
)

// LocalTranscriber implements local transcription, using the whisper.cpp binary.
// Every call resolves and loads the model from scratch; nothing is shared
// between invocations, so repeated calls pay the model load each time.
type LocalTranscriber struct {
	binaryPath string
	modelDir   string
	model      string
}

// NewLocalTranscriber creates a new instance of LocalTranscriber. modelDir is
// the directory holding the ggml model files, model selects the default
// variant (api.DefaultModel when empty).
func NewLocalTranscriber(binaryPath, modelDir, model string) *LocalTranscriber {
	if model == "" {
		model = api.DefaultModel
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelDir:   modelDir,
		model:      model,
	}
}

// Model returns the default model variant this engine was configured with.
func (lt *LocalTranscriber) Model() string {
	return lt.model
}

// Transcript takes an audio file path as input and returns the transcribed text.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	return lt.TranscriptWithModel(inputFilePath, lt.model)
}

// TranscriptWithModel transcribes with a specific model variant. The label is
// mapped to a ggml file name without further validation; an unknown label
// surfaces as the engine's own failure.
func (lt *LocalTranscriber) TranscriptWithModel(inputFilePath string, model string) (string, error) {
	if _, err := os.Stat(inputFilePath); err != nil {
		return "", apperrors.NotFound("audio file not found: %s", inputFilePath)
	}
	if model == "" {
		model = lt.model
	}

	log.Printf("Starting transcription of file %s with model %s\n", inputFilePath, model)

	// whisper.cpp only takes 16kHz WAV input
	is16kHzWav, err := audio.Is16kHzWavFile(inputFilePath)
	if err != nil {
		return "", err
	}
	if !is16kHzWav {
		inputFilePath, err = audio.ConvertTo16kHzWav(inputFilePath)
		if err != nil {
			return "", err
		}
	}

	modelPath := filepath.Join(lt.modelDir, fmt.Sprintf("ggml-%s.bin", model))
	outputBase := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath))

	args := []string{
		"-m", modelPath,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputBase,
	}

	command := exec.Command(lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	log.Printf("Running transcription command...\n command: %s %s", lt.binaryPath, strings.Join(args, " "))

	if err := command.Run(); err != nil {
		return "", apperrors.Processing(err, "whisper.cpp execution failed, stderr: %s", stderr.String())
	}

	output, err := files.ReadOutputFile(outputBase + ".txt")
	if err != nil {
		return "", apperrors.Processing(err, "failed to read transcription output for %s", inputFilePath)
	}

	return output, nil
}
