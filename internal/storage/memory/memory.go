// Package memory provides the default storage.Storage: an ordered slice
// of records that lives for the duration of one session.
package memory

import (
	"fmt"
	"strings"

	"github.com/paagano/EducationCentreMIS/internal/storage"
	"github.com/paagano/EducationCentreMIS/internal/types"
)

// Memory is not safe for concurrent use; a session drives it from a single
// goroutine.
type Memory struct {
	records []types.Record
	lastID  int
}

// New returns an empty store whose first record will get id 1.
func New() *Memory {
	return &Memory{records: make([]types.Record, 0)}
}

func (m *Memory) Create(role types.Role) (types.Record, error) {
	r, err := types.New(role, m.lastID+1)
	if err != nil {
		return nil, fmt.Errorf("Create: %q: %w", role, err)
	}
	m.lastID++
	return r, nil
}

func (m *Memory) Append(record types.Record) error {
	if record == nil {
		return fmt.Errorf("Append: %w", storage.ErrNilRecord)
	}
	if err := types.Validate(record); err != nil {
		return fmt.Errorf("Append: validate: %w", err)
	}
	for _, r := range m.records {
		if r.ID() == record.ID() {
			return fmt.Errorf("Append: id %d: %w", record.ID(), storage.ErrDuplicateID)
		}
	}
	m.records = append(m.records, record)
	return nil
}

// FindByID scans the records in order. Ids are unique, so the first match
// is the only one.
func (m *Memory) FindByID(id int) (types.Record, error) {
	for _, r := range m.records {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("no record found with id: %d: %w", id, storage.ErrNotFound)
}

func (m *Memory) FilterByRole(role string) ([]types.Record, error) {
	matches := make([]types.Record, 0)
	for _, r := range m.records {
		if strings.EqualFold(string(r.Role()), role) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// Records returns a copy of the slice so callers cannot reorder the store.
func (m *Memory) Records() ([]types.Record, error) {
	out := make([]types.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Update only confirms the record is stored: handlers edit the stored
// instance in place.
func (m *Memory) Update(record types.Record) error {
	if record == nil {
		return fmt.Errorf("Update: %w", storage.ErrNilRecord)
	}
	if m.indexOf(record) < 0 {
		return fmt.Errorf("Update: id %d: %w", record.ID(), storage.ErrNotFound)
	}
	return nil
}

// Remove deletes the first entry that is the same instance as record.
func (m *Memory) Remove(record types.Record) error {
	if record == nil {
		return fmt.Errorf("Remove: %w", storage.ErrNilRecord)
	}
	i := m.indexOf(record)
	if i < 0 {
		return fmt.Errorf("Remove: id %d: %w", record.ID(), storage.ErrNotFound)
	}
	m.records = append(m.records[:i], m.records[i+1:]...)
	return nil
}

func (m *Memory) Count() (int, error) {
	return len(m.records), nil
}

// Close drops every record. The id counter is kept so a closed store can
// never hand out an id twice.
func (m *Memory) Close() error {
	m.records = nil
	return nil
}

func (m *Memory) indexOf(record types.Record) int {
	for i, r := range m.records {
		if r == record {
			return i
		}
	}
	return -1
}
