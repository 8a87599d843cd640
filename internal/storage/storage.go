// Package storage defines the Storage interface — the contract that any
// record store must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers should not know or care how records are kept. Two backends
// exist and both live only as long as the session that opened them:
//
//   - memory: an ordered slice of records (the default).
//   - sqlite: a private in-memory SQLite database.
//
// Switching backends is a config change; handlers never notice.
package storage

import (
	"errors"

	"github.com/paagano/EducationCentreMIS/internal/types"
)

// Sentinel errors. Callers match them with errors.Is; backends wrap them
// with operation context.
var (
	ErrNotFound    = errors.New("record not found")
	ErrNilRecord   = errors.New("record is nil")
	ErrDuplicateID = errors.New("record id already stored")
	ErrInvalidRole = types.ErrUnknownRole
)

// Storage is the record store contract.
//
// Ids come from one counter shared by every role: the nth record created
// in a store has id n, no matter which categories came before it.
type Storage interface {
	// Create builds an empty record of the given role with the next id.
	// The record is not stored until Append is called.
	Create(role types.Role) (types.Record, error)

	// Append adds a record to the end of the store. Nil records, records
	// failing types.Validate and records whose id is already stored
	// (ErrDuplicateID) are rejected.
	Append(record types.Record) error

	// FindByID returns the record with the given id or ErrNotFound.
	FindByID(id int) (types.Record, error)

	// FilterByRole returns the records whose role equals role, ignoring
	// case, in insertion order. No match yields an empty slice.
	FilterByRole(role string) ([]types.Record, error)

	// Records returns every record in insertion order.
	Records() ([]types.Record, error)

	// Update writes back an edited record. ErrNotFound if it was never
	// appended or has been removed.
	Update(record types.Record) error

	// Remove deletes the record. ErrNotFound if it is not stored.
	Remove(record types.Record) error

	// Count returns the number of stored records.
	Count() (int, error)

	// Close releases the store; its records are gone afterwards.
	Close() error
}
