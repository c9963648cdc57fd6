package convert

import (
	"fmt"

	"github.com/spf13/cobra"

	"memo2text/internal/app/audio"
)

var inputPath string
var outputPath string

func init() {
	Cmd.Flags().StringVarP(&inputPath, "input", "i", "",
		"input audio file, any format ffmpeg can decode")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"output mp3 path, parent directories are created as needed")

	Cmd.MarkFlagRequired("input")
	Cmd.MarkFlagRequired("output")
}

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a single audio file to MP3",
	Long: `Convert a single audio file to MP3.

The source format is auto-detected by ffmpeg; an existing output file is
overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := audio.ConvertToMP3(inputPath, outputPath); err != nil {
			return err
		}
		fmt.Println(outputPath)
		return nil
	},
}
