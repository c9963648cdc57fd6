package sqlite

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDAO(t *testing.T) (*SQLiteDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewWithDB(db), mock
}

func TestCheckIfFileProcessedFound(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectQuery("SELECT id FROM transcriptions").
		WithArgs("memo.m4a").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := dao.CheckIfFileProcessed("memo.m4a")
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckIfFileProcessedNoRows(t *testing.T) {
	dao, mock := newMockDAO(t)

	mock.ExpectQuery("SELECT id FROM transcriptions").
		WithArgs("new.m4a").
		WillReturnError(sql.ErrNoRows)

	_, err := dao.CheckIfFileProcessed("new.m4a")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRecordToDB(t *testing.T) {
	dao, mock := newMockDAO(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO transcriptions").
		WithArgs("memo.m4a", "memo.mp3", 63, "hello", now, 0, "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := dao.RecordToDB("memo.m4a", "memo.mp3", 63, "hello", now, 0, "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordToDBError(t *testing.T) {
	dao, mock := newMockDAO(t)
	now := time.Now()

	mock.ExpectExec("INSERT INTO transcriptions").
		WillReturnError(fmt.Errorf("disk I/O error"))

	err := dao.RecordToDB("memo.m4a", "memo.mp3", 0, "", now, 1, "ffmpeg failed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestGetAll(t *testing.T) {
	dao, mock := newMockDAO(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "file_name", "mp3_file_name", "audio_duration", "transcription", "transcribed_at", "error_message"}).
		AddRow(2, "b.m4a", "b.mp3", 120, "second memo", now, "").
		AddRow(1, "a.m4a", "a.mp3", 60, "first memo", now.Add(-time.Hour), "")

	mock.ExpectQuery("SELECT id, file_name, mp3_file_name").
		WillReturnRows(rows)

	transcriptions, err := dao.GetAll()
	require.NoError(t, err)
	require.Len(t, transcriptions, 2)
	assert.Equal(t, "b.m4a", transcriptions[0].FileName)
	assert.Equal(t, 120, transcriptions[0].AudioDuration)
	assert.Equal(t, "first memo", transcriptions[1].Transcription)
}

func TestSQLiteRoundTrip(t *testing.T) {
	// Exercises the real driver and the schema bootstrap.
	dao, err := NewSQLiteDB(t.TempDir() + "/history.db")
	require.NoError(t, err)
	defer dao.Close()

	_, err = dao.CheckIfFileProcessed("memo.m4a")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	now := time.Now()
	require.NoError(t, dao.RecordToDB("memo.m4a", "memo.mp3", 63, "hello world", now, 0, ""))

	id, err := dao.CheckIfFileProcessed("memo.m4a")
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	all, err := dao.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hello world", all[0].Transcription)

	// Failed runs don't count as processed.
	require.NoError(t, dao.RecordToDB("broken.m4a", "broken.mp3", 0, "", now, 1, "ffmpeg failed"))
	_, err = dao.CheckIfFileProcessed("broken.m4a")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
