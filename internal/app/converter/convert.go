package converter

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"memo2text/internal/app/api"
	"memo2text/internal/app/audio"
	"memo2text/internal/app/model"
	"memo2text/internal/app/repository"
	"memo2text/internal/app/util/files"
)

// Options configures one batch run over a voice memo directory.
type Options struct {
	// MemosDir is scanned (non-recursively) for new recordings.
	MemosDir string
	// NotesDir receives one markdown file per transcribed memo.
	NotesDir string
	// WorkDir holds the intermediate mp3 files.
	WorkDir string
	// CheckpointPath stores the mod-time watermark between runs.
	// Empty disables checkpointing and every unprocessed memo is picked up.
	CheckpointPath string
	// Limit caps how many memos one run processes. 0 means no cap.
	Limit int
	// Progress configures terminal progress bars.
	Progress ProgressConfig
}

// Converter drives the memo pipeline: discover, convert to mp3, transcribe,
// write the note, record history.
type Converter struct {
	transcriber api.Transcriber
	db          repository.TranscriptionDAO
	logger      *zap.Logger
}

func NewConverter(transcriber api.Transcriber, transcriptionDAO repository.TranscriptionDAO, logger *zap.Logger) *Converter {
	return &Converter{
		transcriber: transcriber,
		db:          transcriptionDAO,
		logger:      logger,
	}
}

func (c *Converter) Close() error {
	return c.db.Close()
}

// Process runs the pipeline once. Per-memo failures are recorded and logged
// but do not stop the run; the checkpoint only advances when every memo of
// the run succeeded, so failed memos stay inside the next scan window.
func (c *Converter) Process(opts Options) error {
	since := time.Time{}
	if opts.CheckpointPath != "" {
		var err error
		since, err = files.ReadCheckpoint(opts.CheckpointPath)
		if err != nil {
			return err
		}
	}

	memos, err := files.FindAudioFiles(opts.MemosDir, since)
	if err != nil {
		return err
	}

	toProcess := c.filterUnprocessed(memos, opts.Limit)
	if len(toProcess) == 0 {
		c.logger.Info("no new voice memos", zap.String("dir", opts.MemosDir))
		return nil
	}

	if err := files.EnsureDir(opts.WorkDir); err != nil {
		return err
	}

	pm := NewProgressManager(opts.Progress)
	bar := pm.CreateBar(len(toProcess), "transcribing")

	started := time.Now()
	var failed int
	for _, memo := range toProcess {
		begin := time.Now()
		if err := c.processOne(memo.FullPath, memo.Name, opts); err != nil {
			failed++
			c.logger.Warn("memo failed",
				zap.String("file", memo.Name),
				zap.Error(err))
		}
		bar.Increment(time.Since(begin))
	}
	pm.Wait()

	if opts.CheckpointPath != "" {
		if failed == 0 {
			if err := files.WriteCheckpoint(opts.CheckpointPath, started); err != nil {
				return err
			}
		} else {
			// Advancing past a failed memo would drop it from the next scan
			// before the history lookup could retry it.
			c.logger.Info("checkpoint not advanced", zap.Int("failed", failed))
		}
	}

	c.logger.Info("pipeline run finished",
		zap.Int("processed", len(toProcess)-failed),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(started)))

	if failed == len(toProcess) {
		return fmt.Errorf("all %d memos failed", failed)
	}
	return nil
}

func (c *Converter) filterUnprocessed(memos []model.FileInfo, limit int) []model.FileInfo {
	toProcess := make([]model.FileInfo, 0, len(memos))
	for _, memo := range memos {
		if !c.isUnprocessed(memo.Name) {
			continue
		}
		toProcess = append(toProcess, memo)
		if limit > 0 && len(toProcess) >= limit {
			break
		}
	}
	return toProcess
}

func (c *Converter) processOne(fullPath, name string, opts Options) error {
	mp3FileName := strings.TrimSuffix(name, filepath.Ext(name)) + ".mp3"
	mp3FilePath := filepath.Join(opts.WorkDir, mp3FileName)

	if err := audio.ConvertToMP3(fullPath, mp3FilePath); err != nil {
		c.record(name, mp3FileName, 0, "", err)
		return err
	}

	duration, err := audio.GetAudioDuration(mp3FilePath)
	if err != nil {
		c.record(name, mp3FileName, 0, "", err)
		return err
	}

	transcription, err := c.transcriber.Transcript(mp3FilePath)
	if err != nil {
		c.record(name, mp3FileName, duration, "", err)
		return err
	}

	noteName := fmt.Sprintf("%d.md", time.Now().Unix())
	if err := files.WriteStringToFile(opts.NotesDir, noteName, transcription); err != nil {
		c.record(name, mp3FileName, duration, transcription, err)
		return err
	}

	c.record(name, mp3FileName, duration, transcription, nil)
	return nil
}

func (c *Converter) record(fileName, mp3FileName string, duration int, transcription string, cause error) {
	hasError := 0
	errorMessage := ""
	if cause != nil {
		hasError = 1
		errorMessage = cause.Error()
	}
	if err := c.db.RecordToDB(fileName, mp3FileName, duration, transcription, time.Now(), hasError, errorMessage); err != nil {
		c.logger.Error("failed to record history", zap.String("file", fileName), zap.Error(err))
	}
}

// isUnprocessed reports whether the DAO has no successful record for name.
func (c *Converter) isUnprocessed(name string) bool {
	id, err := c.db.CheckIfFileProcessed(name)
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	if err != nil {
		c.logger.Warn("history lookup failed, reprocessing", zap.String("file", name), zap.Error(err))
		return true
	}
	c.logger.Debug("already processed, skipping", zap.String("file", name), zap.Int("id", id))
	return false
}
