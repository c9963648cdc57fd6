package converter

import (
	"encoding/binary"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"memo2text/internal/app/testutil"
	"memo2text/internal/app/util/files"
)

func newTestConverter(t *testing.T) (*Converter, *testutil.MockTranscriber, *testutil.MockTranscriptionDAO) {
	t.Helper()
	transcriber := testutil.NewMockTranscriber()
	dao := testutil.NewMockTranscriptionDAO()
	return NewConverter(transcriber, dao, zap.NewNop()), transcriber, dao
}

func testOptions(t *testing.T, memosDir string) Options {
	t.Helper()
	base := t.TempDir()
	return Options{
		MemosDir: memosDir,
		NotesDir: filepath.Join(base, "notes"),
		WorkDir:  filepath.Join(base, "mp3"),
	}
}

func TestProcessEmptyDirectory(t *testing.T) {
	c, transcriber, _ := newTestConverter(t)

	err := c.Process(testOptions(t, t.TempDir()))

	require.NoError(t, err)
	assert.Zero(t, transcriber.CallCount())
}

func TestProcessMissingMemosDir(t *testing.T) {
	c, _, _ := newTestConverter(t)

	err := c.Process(testOptions(t, filepath.Join(t.TempDir(), "missing")))

	assert.Error(t, err)
}

func TestProcessSkipsAlreadyProcessed(t *testing.T) {
	memosDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(memosDir, "done.m4a"), []byte("x"), 0644))

	c, transcriber, dao := newTestConverter(t)
	require.NoError(t, dao.RecordToDB("done.m4a", "done.mp3", 10, "already here", time.Now(), 0, ""))

	err := c.Process(testOptions(t, memosDir))

	require.NoError(t, err)
	assert.Zero(t, transcriber.CallCount())
}

func TestProcessRecordsConversionFailure(t *testing.T) {
	memosDir := t.TempDir()
	// Not valid audio, so the ffmpeg step fails (or ffmpeg is absent, which
	// surfaces through the same processing-failure path).
	require.NoError(t, os.WriteFile(filepath.Join(memosDir, "corrupt.m4a"), []byte("garbage"), 0644))

	c, transcriber, dao := newTestConverter(t)

	err := c.Process(testOptions(t, memosDir))

	// The only memo failed, so the run reports it.
	require.Error(t, err)
	assert.Zero(t, transcriber.CallCount())

	records := dao.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "corrupt.m4a", records[0].FileName)
	assert.NotEmpty(t, records[0].ErrorMessage)
}

// requirePipelineTools skips tests that need the full convert/probe toolchain.
func requirePipelineTools(t *testing.T) {
	t.Helper()
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not installed", tool)
		}
	}
}

// writeMemoWav writes a minimal valid PCM WAV file (1 second of silence,
// 16kHz mono s16le). ffmpeg probes content rather than extensions, so the
// bytes decode fine behind a .m4a memo name.
func writeMemoWav(t *testing.T, path string) {
	t.Helper()

	const sampleRate = 16000
	data := make([]byte, sampleRate*2)

	header := make([]byte, 0, 44)
	header = append(header, []byte("RIFF")...)
	header = binary.LittleEndian.AppendUint32(header, uint32(36+len(data)))
	header = append(header, []byte("WAVEfmt ")...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, 1) // PCM
	header = binary.LittleEndian.AppendUint16(header, 1) // mono
	header = binary.LittleEndian.AppendUint32(header, sampleRate)
	header = binary.LittleEndian.AppendUint32(header, sampleRate*2)
	header = binary.LittleEndian.AppendUint16(header, 2)
	header = binary.LittleEndian.AppendUint16(header, 16)
	header = append(header, []byte("data")...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(data)))

	require.NoError(t, os.WriteFile(path, append(header, data...), 0644))
}

func TestProcessAdvancesCheckpoint(t *testing.T) {
	requirePipelineTools(t)

	memosDir := t.TempDir()
	writeMemoWav(t, filepath.Join(memosDir, "memo.m4a"))

	c, transcriber, dao := newTestConverter(t)

	opts := testOptions(t, memosDir)
	opts.CheckpointPath = filepath.Join(t.TempDir(), "last_timestamp.txt")

	before := time.Now()
	require.NoError(t, c.Process(opts))

	assert.Equal(t, 1, transcriber.CallCount())
	require.Len(t, dao.Records(), 1)

	// The stored watermark must have moved to the run start.
	ts, err := files.ReadCheckpoint(opts.CheckpointPath)
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Second)))
}

func TestProcessKeepsCheckpointWhenMemosFail(t *testing.T) {
	memosDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(memosDir, "corrupt.m4a"), []byte("garbage"), 0644))

	c, _, _ := newTestConverter(t)

	opts := testOptions(t, memosDir)
	opts.CheckpointPath = filepath.Join(t.TempDir(), "last_timestamp.txt")

	// Watermark from an earlier run, older than the memo.
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, files.WriteCheckpoint(opts.CheckpointPath, old))

	require.Error(t, c.Process(opts))

	// The failed memo must stay inside the next scan window.
	ts, err := files.ReadCheckpoint(opts.CheckpointPath)
	require.NoError(t, err)
	assert.Equal(t, old.Unix(), ts.Unix())
}

func TestFilterUnprocessedHonorsLimit(t *testing.T) {
	memosDir := t.TempDir()
	for _, name := range []string{"a.m4a", "b.m4a", "c.m4a"} {
		require.NoError(t, os.WriteFile(filepath.Join(memosDir, name), []byte("x"), 0644))
	}

	c, _, _ := newTestConverter(t)
	memos, err := files.FindAudioFiles(memosDir, time.Time{})
	require.NoError(t, err)

	limited := c.filterUnprocessed(memos, 2)
	assert.Len(t, limited, 2)

	all := c.filterUnprocessed(memos, 0)
	assert.Len(t, all, 3)
}
