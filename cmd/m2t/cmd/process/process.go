package process

import (
	"github.com/spf13/cobra"

	"memo2text/internal/app"
	"memo2text/internal/app/converter"
	"memo2text/internal/config"
)

var memosDir string
var notesDir string
var limit int
var noCheckpoint bool
var noProgress bool

func init() {
	Cmd.Flags().StringVarP(&memosDir, "memos", "d", "",
		"directory holding the voice memo recordings (.m4a/.qta)")
	Cmd.Flags().StringVarP(&notesDir, "notes", "n", "",
		"directory receiving one markdown note per transcribed memo")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0,
		"maximum number of memos to process in one run, 0 means all")
	Cmd.Flags().BoolVar(&noCheckpoint, "no-checkpoint", false,
		"ignore and do not advance the mod-time watermark")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"disable terminal progress bars")

	Cmd.MarkFlagRequired("memos")
	Cmd.MarkFlagRequired("notes")
}

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process",
	Short: "Batch-convert new voice memos into markdown notes",
	Long: `Batch-convert new voice memos into markdown notes.

- Scan the memos directory for recordings newer than the last run
- Convert each to mp3 and transcribe it
- Write the text as <unix-timestamp>.md into the notes directory
- Record every attempt in the sqlite history`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.InitializeConverter()
		if err != nil {
			return err
		}
		defer c.Close()

		settings, err := config.GetSettings()
		if err != nil {
			return err
		}

		opts := converter.Options{
			MemosDir: memosDir,
			NotesDir: notesDir,
			WorkDir:  settings.WorkDir(),
			Limit:    limit,
			Progress: converter.ProgressConfig{Enabled: !noProgress},
		}
		if !noCheckpoint {
			opts.CheckpointPath = settings.CheckpointPath()
		}

		return c.Process(opts)
	},
}
