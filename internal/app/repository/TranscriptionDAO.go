package repository

import (
	"time"

	"memo2text/internal/app/model"
)

type TranscriptionDAO interface {
	Close() error

	GetAll() ([]model.Transcription, error)

	CheckIfFileProcessed(fileName string) (int, error)

	RecordToDB(fileName, mp3FileName string, audioDuration int, transcription string,
		transcribedAt time.Time, hasError int, errorMessage string) error
}
