package model

import "time"

type Transcription struct {
	ID            int
	FileName      string
	Mp3FileName   string
	AudioDuration int
	Transcription string
	TranscribedAt time.Time
	ErrorMessage  string
}
