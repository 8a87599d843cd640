// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY AN IN-MEMORY DATABASE?
// ──────────────────────────
// Records must not outlive the session, so the database is opened with the
// ":memory:" DSN and never touches disk. SQL still buys us ordered scans,
// case-insensitive role matching (COLLATE NOCASE) and a single flat table
// for all three categories.
//
// Every database/sql connection to ":memory:" gets its own empty database,
// so the pool is pinned to exactly one connection.
//
// Importing the driver package registers sqlite3 with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/paagano/EducationCentreMIS/internal/storage"
	"github.com/paagano/EducationCentreMIS/internal/types"

	// Importing the driver registers "sqlite3" with database/sql; the
	// package name is also used to classify constraint errors.
	sqlite3 "github.com/mattn/go-sqlite3"
)

// selectColumns lists the columns in the order scanView expects them.
// Explicit columns — never SELECT * — so Scan ordering cannot drift.
const selectColumns = `id, role, name, telephone, email,
	salary, subject1, subject2, subject3, employment_type, working_hours`

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db     *sql.DB
	lastID int
}

// New opens a private in-memory database, creates the records table and
// returns a ready-to-use *SQLite.
func New() (*SQLite, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Schema:
	//   seq    — insertion order; records are always listed by seq
	//   id     — record id handed out by Create, unique across roles
	//   role   — Teacher / Admin / Student
	//   the rest are the union of every category's fields; columns that
	//   do not apply to a row keep their defaults
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			seq             INTEGER PRIMARY KEY AUTOINCREMENT,
			id              INTEGER NOT NULL UNIQUE,
			role            TEXT    NOT NULL,
			name            TEXT    NOT NULL,
			telephone       TEXT    NOT NULL DEFAULT '',
			email           TEXT    NOT NULL DEFAULT '',
			salary          REAL    NOT NULL DEFAULT 0,
			subject1        TEXT    NOT NULL DEFAULT '',
			subject2        TEXT    NOT NULL DEFAULT '',
			subject3        TEXT    NOT NULL DEFAULT '',
			employment_type TEXT    NOT NULL DEFAULT '',
			working_hours   INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Create hands out the next id. Nothing is written until Append.
func (s *SQLite) Create(role types.Role) (types.Record, error) {
	r, err := types.New(role, s.lastID+1)
	if err != nil {
		return nil, fmt.Errorf("Create: %q: %w", role, err)
	}
	s.lastID++
	return r, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Append inserts a new row. Values go through ? placeholders; user input
// is never concatenated into SQL.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Append(record types.Record) error {
	if record == nil {
		return fmt.Errorf("Append: %w", storage.ErrNilRecord)
	}
	if err := types.Validate(record); err != nil {
		return fmt.Errorf("Append: validate: %w", err)
	}

	stmt, err := s.Db.Prepare(`
		INSERT INTO records (id, role, name, telephone, email,
			salary, subject1, subject2, subject3, employment_type, working_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("Append: prepare: %w", err)
	}
	defer stmt.Close()

	v := record.View()
	_, err = stmt.Exec(v.ID, string(v.Role), v.Name, v.Telephone, v.Email,
		v.Salary, v.Subject1, v.Subject2, v.Subject3, v.EmploymentType, v.WorkingHours)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("Append: id %d: %w", v.ID, storage.ErrDuplicateID)
		}
		return fmt.Errorf("Append: exec: %w", err)
	}

	return nil
}

// FindByID returns a fresh Record rebuilt from the row. Edits to it are
// not visible in the store until Update is called.
func (s *SQLite) FindByID(id int) (types.Record, error) {
	stmt, err := s.Db.Prepare("SELECT " + selectColumns + " FROM records WHERE id = ? LIMIT 1")
	if err != nil {
		return nil, fmt.Errorf("FindByID: prepare: %w", err)
	}
	defer stmt.Close()

	v, err := scanView(stmt.QueryRow(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no record found with id: %d: %w", id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("FindByID: scan: %w", err)
	}

	return types.Restore(v)
}

// FilterByRole relies on COLLATE NOCASE for the case-insensitive match.
func (s *SQLite) FilterByRole(role string) ([]types.Record, error) {
	return s.query("FilterByRole",
		"SELECT "+selectColumns+" FROM records WHERE role = ? COLLATE NOCASE ORDER BY seq", role)
}

func (s *SQLite) Records() ([]types.Record, error) {
	return s.query("Records", "SELECT "+selectColumns+" FROM records ORDER BY seq")
}

// Update rewrites every mutable column. id and role never change.
func (s *SQLite) Update(record types.Record) error {
	if record == nil {
		return fmt.Errorf("Update: %w", storage.ErrNilRecord)
	}

	stmt, err := s.Db.Prepare(`
		UPDATE records SET name = ?, telephone = ?, email = ?,
			salary = ?, subject1 = ?, subject2 = ?, subject3 = ?,
			employment_type = ?, working_hours = ?
		WHERE id = ?
	`)
	if err != nil {
		return fmt.Errorf("Update: prepare: %w", err)
	}
	defer stmt.Close()

	v := record.View()
	result, err := stmt.Exec(v.Name, v.Telephone, v.Email,
		v.Salary, v.Subject1, v.Subject2, v.Subject3,
		v.EmploymentType, v.WorkingHours, v.ID)
	if err != nil {
		return fmt.Errorf("Update: exec: %w", err)
	}

	return expectOneRow("Update", v.ID, result)
}

// Remove deletes by id; ids are unique so this is the record's only row.
func (s *SQLite) Remove(record types.Record) error {
	if record == nil {
		return fmt.Errorf("Remove: %w", storage.ErrNilRecord)
	}

	stmt, err := s.Db.Prepare("DELETE FROM records WHERE id = ?")
	if err != nil {
		return fmt.Errorf("Remove: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(record.ID())
	if err != nil {
		return fmt.Errorf("Remove: exec: %w", err)
	}

	return expectOneRow("Remove", record.ID(), result)
}

func (s *SQLite) Count() (int, error) {
	var n int
	if err := s.Db.QueryRow("SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: scan: %w", err)
	}
	return n, nil
}

// Close closes the only connection, which discards the database.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

func (s *SQLite) query(op, q string, args ...any) ([]types.Record, error) {
	stmt, err := s.Db.Prepare(q)
	if err != nil {
		return nil, fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	records := make([]types.Record, 0)
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		r, err := types.Restore(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return records, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanView(row scanner) (types.RecordView, error) {
	var (
		v    types.RecordView
		role string
	)
	err := row.Scan(
		&v.ID, &role, &v.Name, &v.Telephone, &v.Email,
		&v.Salary, &v.Subject1, &v.Subject2, &v.Subject3,
		&v.EmploymentType, &v.WorkingHours,
	)
	v.Role = types.Role(role)
	return v, err
}

func expectOneRow(op string, id int, result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: id %d: %w", op, id, storage.ErrNotFound)
	}
	return nil
}
