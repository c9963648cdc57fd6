package audio

import (
	"bytes"
	"encoding/json"
	"log"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"memo2text/internal/app/audio/format"
	apperrors "memo2text/internal/app/errors"
	"memo2text/internal/app/model"
)

// ConvertToMP3 decodes the audio file at inputPath and re-encodes it as MP3 at
// outputPath, overwriting any existing file there. The parent directory of
// outputPath is created when missing. Decoding is delegated to ffmpeg, which
// auto-detects the source format from the file content.
func ConvertToMP3(inputPath string, outputPath string) error {
	info, err := os.Stat(inputPath)
	if err != nil {
		return apperrors.NotFound("input file not found: %s", inputPath)
	}
	if !info.Mode().IsRegular() {
		return apperrors.Validation(nil, "input path is not a regular file: %s", inputPath)
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return apperrors.Validation(err, "cannot create output directory: %s", dir)
		}
	}

	if f, ok := format.Detect(inputPath); ok {
		log.Printf("converting to mp3: %s (detected format: %s)\n", filepath.Base(inputPath), f.Name)
	} else {
		log.Printf("converting to mp3: %s (format unknown, left to ffmpeg)\n", filepath.Base(inputPath))
	}

	cmd := exec.Command("ffmpeg", "-i", inputPath, "-vn", "-acodec", "libmp3lame", "-y", outputPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return apperrors.Processing(err, "ffmpeg failed, stderr: %s", stderr.String())
	}

	log.Printf("MP3 conversion completed: '%s'\n", outputPath)
	return nil
}

// GetAudioDuration returns the duration of an audio file in whole seconds, via ffprobe.
func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, apperrors.Processing(err, "ffprobe failed for %s", filePath)
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, apperrors.Processing(err, "unparseable ffprobe duration for %s", filePath)
	}
	return int(math.Round(durationFloat)), nil
}

// Is16kHzWavFile reports whether the file already is 16kHz pcm_s16le WAV,
// the input format whisper.cpp expects.
func Is16kHzWavFile(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, apperrors.Processing(err, "ffprobe failed for %s", filePath)
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return false, apperrors.Processing(err, "unparseable ffprobe output for %s", filePath)
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}

	return false, nil
}

// ConvertTo16kHzWav re-encodes an audio file as 16kHz WAV next to the input
// and returns the new path. An existing output is reused.
func ConvertTo16kHzWav(inputFilePath string) (string, error) {
	outputFilePath := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath)) + "_16khz.wav"

	if _, err := os.Stat(outputFilePath); err == nil {
		log.Printf("16kHz WAV file already exists for '%s', skipping conversion.\n", inputFilePath)
		return outputFilePath, nil
	}

	if _, err := os.Stat(inputFilePath); err != nil {
		return "", apperrors.NotFound("input file not found: %s", inputFilePath)
	}

	log.Printf("convert to 16kHz wav: %s\n", inputFilePath)

	cmd := exec.Command("ffmpeg", "-i", inputFilePath, "-vn", "-acodec", "pcm_s16le", "-ar", "16000", "-ac", "2", outputFilePath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", apperrors.Processing(err, "ffmpeg failed, stderr: %s", stderr.String())
	}

	return outputFilePath, nil
}
