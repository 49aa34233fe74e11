package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/framehouse/estimate-cli/internal/model"
)

// SQLiteStore implements the extraction cache using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS extraction_cache (
	id           TEXT PRIMARY KEY,
	doc_hash     TEXT NOT NULL,
	result       TEXT NOT NULL,
	extracted_at DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extraction_cache_doc_hash ON extraction_cache(doc_hash);
CREATE INDEX IF NOT EXISTS idx_extraction_cache_expires_at ON extraction_cache(expires_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetCachedExtraction returns the newest unexpired extraction for a
// document hash, or (nil, nil) on a miss.
func (s *SQLiteStore) GetCachedExtraction(ctx context.Context, docHash string) (*model.ExtractionResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT result FROM extraction_cache
		 WHERE doc_hash = ? AND expires_at > datetime('now')
		 ORDER BY extracted_at DESC LIMIT 1`,
		docHash,
	)

	var resultJSON string
	err := row.Scan(&resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get cached extraction")
	}

	var res model.ExtractionResult
	if err := json.Unmarshal([]byte(resultJSON), &res); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal cached extraction")
	}
	return &res, nil
}

// SetCachedExtraction stores an extraction result under a document hash.
func (s *SQLiteStore) SetCachedExtraction(ctx context.Context, docHash string, res model.ExtractionResult, ttl time.Duration) error {
	id := uuid.New().String()
	now := time.Now().UTC()

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal extraction")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO extraction_cache (id, doc_hash, result, extracted_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		id, docHash, string(resultJSON), now, now.Add(ttl),
	)
	return eris.Wrap(err, "sqlite: set cached extraction")
}

// DeleteExpiredExtractions removes stale cache rows and reports the count.
func (s *SQLiteStore) DeleteExpiredExtractions(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM extraction_cache WHERE expires_at <= datetime('now')`,
	)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: delete expired extractions")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "sqlite: rows affected")
}
