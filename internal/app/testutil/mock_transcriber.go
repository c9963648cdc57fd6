package testutil

import (
	"sync"

	apperrors "memo2text/internal/app/errors"
)

// MockTranscriber is a configurable test double for the api.Transcriber and
// api.ModelTranscriber interfaces. No real engine is touched.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	// ResponseMap overrides the response per input path.
	ResponseMap map[string]string
	// ErrorMap overrides the error per input path.
	ErrorMap map[string]error
	// FailMissing makes the mock behave like a real engine for absent paths.
	FailMissing map[string]bool

	Calls      []string
	ModelCalls []string
}

// NewMockTranscriber creates a new MockTranscriber with sensible defaults
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
		FailMissing:     make(map[string]bool),
	}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, inputFilePath)

	if m.FailMissing[inputFilePath] {
		return "", apperrors.NotFound("audio file not found: %s", inputFilePath)
	}
	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if resp, ok := m.ResponseMap[inputFilePath]; ok {
		return resp, nil
	}
	return m.DefaultResponse, nil
}

// TranscriptWithModel implements the api.ModelTranscriber interface
func (m *MockTranscriber) TranscriptWithModel(inputFilePath string, model string) (string, error) {
	m.mu.Lock()
	m.ModelCalls = append(m.ModelCalls, model)
	m.mu.Unlock()
	return m.Transcript(inputFilePath)
}

// CallCount returns how many transcriptions were attempted.
func (m *MockTranscriber) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
