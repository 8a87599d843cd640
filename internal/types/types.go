// Package types holds the person records managed by the application.
// Keeping them in one place prevents import cycles: handlers, storage
// and the menu can all import types without depending on each other.
//
// THE RECORD MODEL:
// ─────────────────
// Three categories of people share the same identity fields (Person) and
// add their own on top:
//
//	Teacher  → salary, two subjects
//	Admin    → salary, employment type, working hours
//	Student  → three subjects
//
// The set is closed. Record is the capability interface every category
// satisfies; the unexported person() method keeps other packages from
// adding a fourth implementation by accident.
package types

import (
	"errors"
	"strings"

	"github.com/paagano/EducationCentreMIS/internal/input"
)

// Role names one of the three record categories.
type Role string

const (
	RoleTeacher Role = "Teacher"
	RoleAdmin   Role = "Admin"
	RoleStudent Role = "Student"
)

// ErrUnknownRole is returned when a role token names none of ListRoles.
var ErrUnknownRole = errors.New("unknown role")

// ListRoles returns the fixed role enumeration in menu order.
// A fresh slice is returned so callers may modify it.
func ListRoles() []Role {
	return []Role{RoleTeacher, RoleAdmin, RoleStudent}
}

// ParseRole matches s against the known roles, ignoring case and
// surrounding whitespace.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range ListRoles() {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Record is implemented by *Teacher, *Admin and *Student.
type Record interface {
	ID() int
	Role() Role

	Name() string
	SetName(name string)
	Telephone() string
	SetTelephone(telephone string)
	Email() string
	SetEmail(email string)

	// Display renders the record as one listing row: the common columns
	// first, then the category's own fields.
	Display() string

	// Populate asks for every field of a freshly created record. Blank
	// answers go through the normal setters, so a blank name becomes
	// "Unknown" and a blank number leaves the zero value.
	Populate(in input.Reader)

	// EditFields asks for every editable field in declared order. A blank
	// answer keeps the current value; unparseable numbers are ignored.
	EditFields(in input.Reader)

	// View returns a flat snapshot of the record.
	View() RecordView

	person() *Person
}

// New constructs an empty record of the given role. The id is fixed for
// the lifetime of the record.
func New(role Role, id int) (Record, error) {
	switch role {
	case RoleTeacher:
		return NewTeacher(id), nil
	case RoleAdmin:
		return NewAdmin(id), nil
	case RoleStudent:
		return NewStudent(id), nil
	default:
		return nil, ErrUnknownRole
	}
}
