package journal

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

// SQLiteStore is a Store backed by SQLite.
//
// It expects an *sql.DB that uses a SQLite driver (for example,
// "modernc.org/sqlite"). The caller is responsible for importing the
// driver, e.g.:
//
//	import _ "modernc.org/sqlite"
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore initializes the required schema in the given database
// and returns a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS navigations (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			destination TEXT NOT NULL,
			object_type TEXT NOT NULL,
			outcome TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			error TEXT,
			started_at INTEGER NOT NULL,
			duration_ns INTEGER NOT NULL
		);`,
	)
	return err
}

func (s *SQLiteStore) Append(rec *Record) error {
	_, err := s.db.Exec(`
		INSERT INTO navigations (id, run_id, destination, object_type, outcome, attempts, error, started_at, duration_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.RunID,
		rec.Destination,
		rec.ObjectType,
		string(rec.Outcome),
		rec.Attempts,
		rec.Error,
		rec.StartedAt.UnixNano(),
		rec.Duration.Nanoseconds(),
	)
	return err
}

func (s *SQLiteStore) Get(id string) (*Record, error) {
	row := s.db.QueryRow(`
		SELECT id, run_id, destination, object_type, outcome, attempts, error, started_at, duration_ns
		FROM navigations
		WHERE id = ?`,
		id,
	)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *SQLiteStore) List(filter Filter) ([]*Record, error) {
	query := `
		SELECT id, run_id, destination, object_type, outcome, attempts, error, started_at, duration_ns
		FROM navigations`
	var args []any
	var clauses []string

	if filter.RunID != "" {
		clauses = append(clauses, "run_id = ?")
		args = append(args, filter.RunID)
	}
	if filter.Destination != "" {
		clauses = append(clauses, "destination = ?")
		args = append(args, filter.Destination)
	}
	if filter.Outcome != "" {
		clauses = append(clauses, "outcome = ?")
		args = append(args, string(filter.Outcome))
	}

	if len(clauses) > 0 {
		query = query + " WHERE " + strings.Join(clauses, " AND ")
	}
	query = query + " ORDER BY started_at, id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var outcome string
	var errStr sql.NullString
	var startedAt, durationNs int64

	if err := row.Scan(
		&rec.ID,
		&rec.RunID,
		&rec.Destination,
		&rec.ObjectType,
		&outcome,
		&rec.Attempts,
		&errStr,
		&startedAt,
		&durationNs,
	); err != nil {
		return nil, err
	}

	rec.Outcome = Outcome(outcome)
	if errStr.Valid {
		rec.Error = errStr.String
	}
	rec.StartedAt = time.Unix(0, startedAt)
	rec.Duration = time.Duration(durationNs)

	return &rec, nil
}
