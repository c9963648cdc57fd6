package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"memo2text/cmd/m2t/cmd/convert"
	"memo2text/cmd/m2t/cmd/export"
	"memo2text/cmd/m2t/cmd/process"
	"memo2text/cmd/m2t/cmd/serve"
	"memo2text/cmd/m2t/cmd/transcribe"
	"memo2text/cmd/m2t/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "m2t",
	Short: "Convert voice memos to MP3 and transcribe them to text",
	Long: `Convert voice memos to MP3 and transcribe them to text.
- convert re-encodes any audio file as MP3 via ffmpeg
- transcribe runs a whisper model over an audio file and prints the text
- process batch-converts new voice memos into markdown notes
- processed records are saved to sqlite`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(process.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
