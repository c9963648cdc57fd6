package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"memo2text/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name TEXT NOT NULL,
	mp3_file_name TEXT NOT NULL,
	audio_duration INTEGER NOT NULL DEFAULT 0,
	transcription TEXT NOT NULL DEFAULT '',
	transcribed_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (or creates) the history database at dbFilePath.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	sdb := &SQLiteDB{db: db}
	if err := sdb.init(); err != nil {
		db.Close()
		return nil, err
	}
	return sdb, nil
}

// NewWithDB wraps an existing connection. Used by tests.
func NewWithDB(db *sql.DB) *SQLiteDB {
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) init() error {
	if _, err := sdb.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

// CheckIfFileProcessed returns the record id of a successful run for fileName,
// or sql.ErrNoRows when the file has not been processed yet.
func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM transcriptions WHERE file_name = ? AND has_error = 0`
	row := sdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) RecordToDB(fileName, mp3FileName string, audioDuration int, transcription string,
	transcribedAt time.Time, hasError int, errorMessage string) error {
	insertSQL := `INSERT INTO transcriptions (file_name, mp3_file_name, audio_duration, transcription, transcribed_at, has_error, error_message) VALUES (?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, fileName, mp3FileName, audioDuration, transcription, transcribedAt, hasError, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert transcription record: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAll() ([]model.Transcription, error) {
	sqlStr := `
		SELECT id, file_name, mp3_file_name, audio_duration, transcription, transcribed_at, error_message
		FROM transcriptions
		WHERE has_error = 0
		ORDER BY transcribed_at DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	transcriptions := make([]model.Transcription, 0)

	for rows.Next() {
		var t model.Transcription
		err = rows.Scan(&t.ID, &t.FileName, &t.Mp3FileName, &t.AudioDuration, &t.Transcription, &t.TranscribedAt, &t.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}

		transcriptions = append(transcriptions, t)
	}
	return transcriptions, rows.Err()
}
