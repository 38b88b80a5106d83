// Package state provides the SQLite-backed keyword index. The index is a
// denormalized view over built spec documents so that keyword search does
// not have to re-parse every spec file.
package state

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/specdoc-labs/specdoc/pkg/model"
)

// Store is the keyword index. Open or NewStoreWithDB must be called before
// any other method.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewStore creates an unopened store. A nil logger discards logs.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{logger: logger}
}

// NewStoreWithDB wraps an existing connection. Used by tests.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db, logger: slog.New(slog.DiscardHandler)}
}

// Open opens the SQLite database at path, creating parent directories as
// needed. Use ":memory:" for an in-memory index.
func (s *Store) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create index directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open index database: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping index database: %w", err)
	}
	s.db = db
	s.path = path
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Entry is one built spec document queued for indexing.
type Entry struct {
	Doc    *model.LibraryDoc
	Path   string
	Format string
}

// Snapshot describes one indexing run.
type Snapshot struct {
	ID        string
	CreatedAt time.Time
	Libraries int
	Keywords  int
}

// LibraryRow is one indexed library.
type LibraryRow struct {
	Name         string
	Version      string
	Type         string
	Scope        string
	DocFormat    string
	Source       string
	Path         string
	Format       string
	KeywordCount int
}

// KeywordHit is one keyword search result.
type KeywordHit struct {
	Library  string
	Name     string
	Shortdoc string
	Tags     string
	Args     string
	Source   string
	Lineno   int
}

// ReplaceAll atomically replaces the whole index with the given entries and
// records a snapshot row for the run.
func (s *Store) ReplaceAll(entries []Entry) (*Snapshot, error) {
	if s.db == nil {
		return nil, fmt.Errorf("index database not opened")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin index transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM keywords`); err != nil {
		return nil, fmt.Errorf("failed to clear keywords: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM libraries`); err != nil {
		return nil, fmt.Errorf("failed to clear libraries: %w", err)
	}

	totalKeywords := 0
	for _, entry := range entries {
		doc := entry.Doc
		if _, err := tx.Exec(
			`INSERT INTO libraries (name, version, type, scope, doc_format, source, lineno, path, format, keyword_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			doc.Name, doc.Version, doc.Type, doc.Scope, doc.DocFormat, doc.Source, doc.Lineno,
			entry.Path, entry.Format, len(doc.Keywords),
		); err != nil {
			return nil, fmt.Errorf("failed to index library %s: %w", doc.Name, err)
		}
		if err := insertKeywords(tx, doc.Name, doc.Inits, true); err != nil {
			return nil, err
		}
		if err := insertKeywords(tx, doc.Name, doc.Keywords, false); err != nil {
			return nil, err
		}
		totalKeywords += len(doc.Keywords)
	}

	snapshot := &Snapshot{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Libraries: len(entries),
		Keywords:  totalKeywords,
	}
	if _, err := tx.Exec(
		`INSERT INTO snapshots (id, created_at, libraries, keywords) VALUES (?, ?, ?, ?)`,
		snapshot.ID, snapshot.CreatedAt, snapshot.Libraries, snapshot.Keywords,
	); err != nil {
		return nil, fmt.Errorf("failed to record snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit index: %w", err)
	}
	s.logger.Debug("index replaced", "snapshot", snapshot.ID, "libraries", snapshot.Libraries, "keywords", snapshot.Keywords)
	return snapshot, nil
}

func insertKeywords(tx *sql.Tx, library string, kws []model.KeywordDoc, isInit bool) error {
	for _, kw := range kws {
		if _, err := tx.Exec(
			`INSERT INTO keywords (library, name, shortdoc, tags, args, source, lineno, is_init)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			library, kw.Name, kw.Shortdoc, strings.Join(kw.Tags, ","),
			strings.Join(kw.Args.Names(), ", "), kw.Source, kw.Lineno, boolToInt(isInit),
		); err != nil {
			return fmt.Errorf("failed to index keyword %s.%s: %w", library, kw.Name, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SearchKeywords returns non-init keywords whose name or tags contain term,
// case-insensitively, ordered by library then keyword name.
func (s *Store) SearchKeywords(term string) ([]KeywordHit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("index database not opened")
	}
	pattern := "%" + term + "%"
	rows, err := s.db.Query(
		`SELECT library, name, shortdoc, tags, args, source, lineno
		 FROM keywords
		 WHERE is_init = 0 AND (name LIKE ? COLLATE NOCASE OR tags LIKE ? COLLATE NOCASE)
		 ORDER BY library, name`,
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("keyword search failed: %w", err)
	}
	defer rows.Close()

	var hits []KeywordHit
	for rows.Next() {
		var hit KeywordHit
		if err := rows.Scan(&hit.Library, &hit.Name, &hit.Shortdoc, &hit.Tags, &hit.Args, &hit.Source, &hit.Lineno); err != nil {
			return nil, fmt.Errorf("failed to scan keyword row: %w", err)
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

// Libraries returns all indexed libraries ordered by name.
func (s *Store) Libraries() ([]LibraryRow, error) {
	if s.db == nil {
		return nil, fmt.Errorf("index database not opened")
	}
	rows, err := s.db.Query(
		`SELECT name, version, type, scope, doc_format, source, path, format, keyword_count
		 FROM libraries ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("library listing failed: %w", err)
	}
	defer rows.Close()

	var libs []LibraryRow
	for rows.Next() {
		var lib LibraryRow
		if err := rows.Scan(&lib.Name, &lib.Version, &lib.Type, &lib.Scope, &lib.DocFormat,
			&lib.Source, &lib.Path, &lib.Format, &lib.KeywordCount); err != nil {
			return nil, fmt.Errorf("failed to scan library row: %w", err)
		}
		libs = append(libs, lib)
	}
	return libs, rows.Err()
}

// LatestSnapshot returns the most recent indexing run, or nil when the
// index has never been populated.
func (s *Store) LatestSnapshot() (*Snapshot, error) {
	if s.db == nil {
		return nil, fmt.Errorf("index database not opened")
	}
	row := s.db.QueryRow(`SELECT id, created_at, libraries, keywords FROM snapshots ORDER BY created_at DESC LIMIT 1`)
	var snapshot Snapshot
	if err := row.Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.Libraries, &snapshot.Keywords); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return &snapshot, nil
}
