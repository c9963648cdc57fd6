package files

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "memo2text/internal/app/errors"
	"memo2text/internal/app/model"
)

// memoExtensions are the recording formats the Voice Memos app produces.
var memoExtensions = map[string]bool{
	".m4a": true,
	".qta": true,
}

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// EnsureDir creates dir (and parents) when missing.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return apperrors.Validation(err, "cannot create directory: %s", dir)
		}
	}
	return nil
}

// FindAudioFiles returns the voice memo recordings in dir, newest first.
// When since is non-zero only files modified after it are returned. The scan
// is non-recursive and extension matching is case-insensitive.
func FindAudioFiles(dir string, since time.Time) ([]model.FileInfo, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, apperrors.NotFound("directory not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, apperrors.Validation(nil, "path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.Validation(err, "cannot read directory: %s", dir)
	}

	fileInfos := make([]model.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !memoExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			// Skip files we can't stat, the next run picks them up.
			continue
		}
		if !since.IsZero() && !fi.ModTime().After(since) {
			continue
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(dir, entry.Name()),
			ModTime:  fi.ModTime(),
			Name:     entry.Name(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.After(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

// WriteStringToFile writes content into dir/name, creating dir when missing.
func WriteStringToFile(dir, name, content string) error {
	if err := EnsureDir(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return apperrors.Validation(err, "cannot write file: %s", path)
	}
	return nil
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

// ReadCheckpoint reads a unix-seconds checkpoint file. A missing file yields
// the zero time so a first run processes everything.
func ReadCheckpoint(path string) (time.Time, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(string(content)), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed checkpoint file %s: %w", path, err)
	}
	return time.Unix(secs, 0), nil
}

// WriteCheckpoint stores t as unix seconds at path.
func WriteCheckpoint(path string, t time.Time) error {
	return os.WriteFile(path, []byte(strconv.FormatInt(t.Unix(), 10)), 0644)
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}
