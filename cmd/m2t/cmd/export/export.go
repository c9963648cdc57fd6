package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"memo2text/internal/app/converter/export"
	"memo2text/internal/app/repository/sqlite"
	"memo2text/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "transcriptions.xlsx",
		"output xlsx file path")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transcription history to an Excel file",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.InitializeConfig()
		if err != nil {
			return err
		}

		db, err := sqlite.NewSQLiteDB(settings.HistoryDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		transcriptions, err := db.GetAll()
		if err != nil {
			return err
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			return err
		}

		fmt.Printf("Exported %d transcriptions to %s\n", len(transcriptions), outputFilePath)
		return nil
	},
}
