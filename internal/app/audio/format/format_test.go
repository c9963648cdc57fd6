package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectBytes(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		want     string
		detected bool
	}{
		{"wav", []byte("RIFF\x24\x08\x00\x00WAVEfmt "), "wav", true},
		{"mp3 with id3", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"), "mp3", true},
		{"mp3 frame sync", []byte{0xFF, 0xFB, 0x90, 0x00}, "mp3", true},
		{"flac", []byte("fLaC\x00\x00\x00\x22"), "flac", true},
		{"ogg", []byte("OggS\x00\x02\x00\x00"), "ogg", true},
		{"m4a", []byte("\x00\x00\x00\x20ftypM4A "), "m4a", true},
		{"quicktime memo", []byte("\x00\x00\x00\x18ftypqt  "), "m4a", true},
		{"text file", []byte("hello world, not audio"), "", false},
		{"empty", nil, "", false},
		{"too short", []byte("RI"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := DetectBytes(tt.data)
			assert.Equal(t, tt.detected, ok)
			if tt.detected {
				assert.Equal(t, tt.want, f.Name)
			}
		})
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "sample.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF\x24\x08\x00\x00WAVEfmt "), 0644))

	f, ok := Detect(path)
	require.True(t, ok)
	assert.Equal(t, "wav", f.Name)
	assert.Contains(t, f.Extensions, ".wav")
}

func TestDetectMissingFile(t *testing.T) {
	_, ok := Detect(filepath.Join(t.TempDir(), "nope.wav"))
	assert.False(t, ok)
}

func TestRegisterCustomFormat(t *testing.T) {
	Register(Format{Name: "caf", Extensions: []string{".caf"}}, 0, []byte("caff"))

	f, ok := DetectBytes([]byte("caff\x00\x01\x00\x00"))
	require.True(t, ok)
	assert.Equal(t, "caf", f.Name)
}

func TestQuickTimeNeedsSystemCodec(t *testing.T) {
	f, ok := DetectBytes([]byte("\x00\x00\x00\x18ftypqt  "))
	require.True(t, ok)
	assert.True(t, f.NeedsSystemCodec)
}
