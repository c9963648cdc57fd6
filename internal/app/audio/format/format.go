// Package format keeps a registry of decodable audio formats keyed by their
// byte signatures. Detection is advisory: ffmpeg stays the authority on what
// it can actually decode, the registry only names the format up front for
// logging and diagnostics.
package format

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// sniffLen is how many leading bytes Detect reads from a file.
const sniffLen = 16

// Format describes a decodable audio container/codec family.
type Format struct {
	Name       string
	Extensions []string
	// NeedsSystemCodec marks formats that only decode when the host ffmpeg
	// build carries the matching codec (e.g. some QuickTime audio variants).
	NeedsSystemCodec bool
}

type signature struct {
	offset int
	magic  []byte
}

type entry struct {
	sig    signature
	format Format
}

var (
	mu       sync.RWMutex
	registry []entry
)

// Register adds a format keyed by a byte signature at the given offset.
// Later registrations never shadow earlier ones for the same signature.
func Register(f Format, offset int, magic []byte) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, entry{sig: signature{offset: offset, magic: magic}, format: f})
}

func init() {
	Register(Format{Name: "wav", Extensions: []string{".wav"}}, 0, []byte("RIFF"))
	Register(Format{Name: "mp3", Extensions: []string{".mp3"}}, 0, []byte("ID3"))
	Register(Format{Name: "flac", Extensions: []string{".flac"}}, 0, []byte("fLaC"))
	Register(Format{Name: "ogg", Extensions: []string{".ogg"}}, 0, []byte("OggS"))
	// ISO base media (m4a and the QuickTime voice memo variant) carries the
	// ftyp box after a 4-byte size field.
	Register(Format{Name: "m4a", Extensions: []string{".m4a", ".qta"}, NeedsSystemCodec: true}, 4, []byte("ftyp"))
}

// DetectBytes matches the leading bytes of an audio file against the registry.
func DetectBytes(b []byte) (Format, bool) {
	mu.RLock()
	defer mu.RUnlock()
	for _, e := range registry {
		end := e.sig.offset + len(e.sig.magic)
		if len(b) >= end && bytes.Equal(b[e.sig.offset:end], e.sig.magic) {
			return e.format, true
		}
	}
	// Raw MPEG audio without an ID3 tag starts on a frame sync.
	if len(b) >= 2 && b[0] == 0xFF && b[1]&0xE0 == 0xE0 {
		return Format{Name: "mp3", Extensions: []string{".mp3"}}, true
	}
	return Format{}, false
}

// Detect sniffs the file at path and returns the registered format, if any.
func Detect(path string) (Format, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Format{}, false
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return Format{}, false
	}
	return DetectBytes(buf[:n])
}
