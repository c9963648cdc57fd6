package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"memo2text/internal/app/model"
)

// ToExcel writes the transcription history to an xlsx file.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "MP3 File Name"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Transcribed At"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Error Message"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.FileName
		row.AddCell().Value = t.Mp3FileName
		row.AddCell().Value = fmt.Sprintf("%d", t.AudioDuration)
		row.AddCell().Value = t.TranscribedAt.Format(time.RFC3339)
		row.AddCell().Value = t.Transcription
		row.AddCell().Value = t.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save xlsx: %w", err)
	}
	return nil
}
