package testutil

import (
	"database/sql"
	"sync"
	"time"

	"memo2text/internal/app/model"
)

// MockTranscriptionDAO is an in-memory repository.TranscriptionDAO.
type MockTranscriptionDAO struct {
	mu      sync.Mutex
	records []model.Transcription
	nextID  int

	RecordErr error
	Closed    bool
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{nextID: 1}
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

func (m *MockTranscriptionDAO) GetAll() ([]model.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Transcription, 0, len(m.records))
	for _, r := range m.records {
		if r.ErrorMessage == "" {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockTranscriptionDAO) CheckIfFileProcessed(fileName string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.FileName == fileName && r.ErrorMessage == "" {
			return r.ID, nil
		}
	}
	return 0, sql.ErrNoRows
}

func (m *MockTranscriptionDAO) RecordToDB(fileName, mp3FileName string, audioDuration int, transcription string,
	transcribedAt time.Time, hasError int, errorMessage string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordErr != nil {
		return m.RecordErr
	}
	m.records = append(m.records, model.Transcription{
		ID:            m.nextID,
		FileName:      fileName,
		Mp3FileName:   mp3FileName,
		AudioDuration: audioDuration,
		Transcription: transcription,
		TranscribedAt: transcribedAt,
		ErrorMessage:  errorMessage,
	})
	m.nextID++
	return nil
}

// Records returns a copy of everything recorded, including failed runs.
func (m *MockTranscriptionDAO) Records() []model.Transcription {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Transcription, len(m.records))
	copy(out, m.records)
	return out
}
