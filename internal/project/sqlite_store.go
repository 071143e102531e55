package project

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
    id      TEXT PRIMARY KEY,
    kind    TEXT NOT NULL,
    date    TEXT NOT NULL,
    payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_kind_date ON records(kind, date);
CREATE TABLE IF NOT EXISTS project_metadata (
    rowid_one INTEGER PRIMARY KEY CHECK (rowid_one = 1),
    payload   TEXT NOT NULL
);`

// SQLiteStore is a drop-in Store backend keeping records in an embedded
// SQLite database keyed by record id with a secondary (kind, date)
// index. Report snapshots still land in the reports directory so the
// exported layout matches the file backend.
type SQLiteStore struct {
	projectName string
	db          *sql.DB
	reportsDir  string
	log         zerolog.Logger
}

func NewSQLiteStore(projectRoot, projectName, dbPath string, log zerolog.Logger) (*SQLiteStore, error) {
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(projectRoot, dbPath)
	}
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure db dir: %w", ErrStorageUnavailable, err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %w", ErrStorageUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite: %w", ErrStorageUnavailable, err)
	}
	return &SQLiteStore{
		projectName: projectName,
		db:          db,
		reportsDir:  filepath.Join(projectRoot, managementDirName, reportsDirName),
		log:         log,
	}, nil
}

func (s *SQLiteStore) Initialize() error {
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("%w: apply schema: %w", ErrStorageUnavailable, err)
	}
	if err := os.MkdirAll(s.reportsDir, 0o755); err != nil {
		return fmt.Errorf("%w: ensure reports dir: %w", ErrStorageUnavailable, err)
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM project_metadata`).Scan(&n); err != nil {
		return fmt.Errorf("%w: check metadata: %w", ErrStorageUnavailable, err)
	}
	if n > 0 {
		return nil
	}
	now := time.Now().Format(time.RFC3339)
	initial := &Metadata{
		ProjectName:   s.projectName,
		CreatedAt:     now,
		LastUpdated:   now,
		Status:        "Active",
		Milestones:    []string{},
		KeyObjectives: []string{},
	}
	payload, err := json.Marshal(initial)
	if err != nil {
		return fmt.Errorf("%w: encode metadata: %w", ErrStorageUnavailable, err)
	}
	if _, err := s.db.Exec(`INSERT INTO project_metadata (rowid_one, payload) VALUES (1, ?)`, string(payload)); err != nil {
		return fmt.Errorf("%w: seed metadata: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SQLiteStore) Append(kind Kind, id string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode record %s: %w", ErrStorageUnavailable, id, err)
	}
	var dated struct {
		Date string `json:"date"`
	}
	_ = json.Unmarshal(payload, &dated)
	if _, err := s.db.Exec(
		`INSERT INTO records (id, kind, date, payload) VALUES (?, ?, ?, ?)`,
		id, string(kind), dated.Date, string(payload),
	); err != nil {
		return fmt.Errorf("%w: insert record %s: %w", ErrStorageUnavailable, id, err)
	}
	if err := s.updateMetadata(kind, id); err != nil {
		return err
	}
	s.log.Debug().Str("id", id).Str("section", metadataSection(kind)).Msg("record appended")
	return nil
}

func (s *SQLiteStore) Scan(kind Kind) ([]json.RawMessage, error) {
	rows, err := s.db.Query(`SELECT payload FROM records WHERE kind = ?`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%w: scan %s: %w", ErrStorageUnavailable, kind, err)
	}
	defer func() { _ = rows.Close() }()
	var out []json.RawMessage
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: scan row: %w", ErrStorageUnavailable, err)
		}
		out = append(out, json.RawMessage(payload))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan rows: %w", ErrStorageUnavailable, err)
	}
	return out, nil
}

func (s *SQLiteStore) Empty() (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: count records: %w", ErrStorageUnavailable, err)
	}
	return n == 0, nil
}

func (s *SQLiteStore) Metadata() (*Metadata, error) {
	var payload string
	if err := s.db.QueryRow(`SELECT payload FROM project_metadata WHERE rowid_one = 1`).Scan(&payload); err != nil {
		return nil, fmt.Errorf("%w: read metadata: %w", ErrStorageUnavailable, err)
	}
	var meta Metadata
	if err := json.Unmarshal([]byte(payload), &meta); err != nil {
		return nil, fmt.Errorf("%w: metadata: %w", ErrCorruptRecord, err)
	}
	return &meta, nil
}

func (s *SQLiteStore) WriteReport(summary *Summary) (string, error) {
	name := fmt.Sprintf("project_report_%s.json", time.Now().Format(timestampLayout))
	path := filepath.Join(s.reportsDir, name)
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode report: %w", ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write report: %w", ErrStorageUnavailable, err)
	}
	return path, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) updateMetadata(kind Kind, id string) error {
	meta, err := s.Metadata()
	if err != nil {
		return err
	}
	meta.appendID(kind, id)
	meta.LastUpdated = time.Now().Format(time.RFC3339)
	payload, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("%w: encode metadata: %w", ErrStorageUnavailable, err)
	}
	if _, err := s.db.Exec(`UPDATE project_metadata SET payload = ? WHERE rowid_one = 1`, string(payload)); err != nil {
		return fmt.Errorf("%w: rewrite metadata: %w", ErrStorageUnavailable, err)
	}
	return nil
}
