// Package storagetest holds the behavioral cases every storage.Storage
// backend must pass. Backend packages call Run from their own tests.
package storagetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paagano/EducationCentreMIS/internal/storage"
	"github.com/paagano/EducationCentreMIS/internal/types"
)

// Factory returns a new, empty store. Run closes it when the case ends.
type Factory func(t *testing.T) storage.Storage

// Run executes the shared cases against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	cases := []struct {
		name string
		fn   func(t *testing.T, s storage.Storage)
	}{
		{"IDsAreSharedAcrossRoles", testIDsAreSharedAcrossRoles},
		{"CreateUnknownRole", testCreateUnknownRole},
		{"AppendRejectsNil", testAppendRejectsNil},
		{"AppendRejectsDuplicateID", testAppendRejectsDuplicateID},
		{"FindByID", testFindByID},
		{"FilterByRoleIgnoresCase", testFilterByRoleIgnoresCase},
		{"RecordsKeepInsertionOrder", testRecordsKeepInsertionOrder},
		{"UpdatePersistsEdits", testUpdatePersistsEdits},
		{"Remove", testRemove},
		{"IDsNotReusedAfterRemove", testIDsNotReusedAfterRemove},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			c.fn(t, s)
		})
	}
}

func add(t *testing.T, s storage.Storage, role types.Role, name string) types.Record {
	t.Helper()
	r, err := s.Create(role)
	require.NoError(t, err)
	r.SetName(name)
	require.NoError(t, s.Append(r))
	return r
}

func ids(records []types.Record) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID())
	}
	return out
}

func testIDsAreSharedAcrossRoles(t *testing.T, s storage.Storage) {
	roles := []types.Role{types.RoleStudent, types.RoleTeacher, types.RoleStudent, types.RoleAdmin}
	for i, role := range roles {
		r := add(t, s, role, "p")
		assert.Equal(t, i+1, r.ID())
		assert.Equal(t, role, r.Role())
	}

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func testCreateUnknownRole(t *testing.T, s storage.Storage) {
	_, err := s.Create("Parent")
	assert.ErrorIs(t, err, storage.ErrInvalidRole)

	// A failed Create does not consume an id.
	r, err := s.Create(types.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID())
}

func testAppendRejectsNil(t *testing.T, s storage.Storage) {
	assert.ErrorIs(t, s.Append(nil), storage.ErrNilRecord)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testAppendRejectsDuplicateID(t *testing.T, s storage.Storage) {
	r := add(t, s, types.RoleTeacher, "Ada")

	assert.ErrorIs(t, s.Append(r), storage.ErrDuplicateID)
	assert.ErrorIs(t, s.Append(types.NewStudent(r.ID())), storage.ErrDuplicateID)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := s.Records()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, types.RoleTeacher, all[0].Role())
}

func testFindByID(t *testing.T, s storage.Storage) {
	add(t, s, types.RoleTeacher, "Ada")
	add(t, s, types.RoleStudent, "Linus")

	r, err := s.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Linus", r.Name())
	assert.Equal(t, types.RoleStudent, r.Role())

	_, err = s.FindByID(42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testFilterByRoleIgnoresCase(t *testing.T, s storage.Storage) {
	add(t, s, types.RoleTeacher, "Ada")
	add(t, s, types.RoleStudent, "Linus")
	add(t, s, types.RoleTeacher, "Grace")

	got, err := s.FilterByRole("teacher")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids(got))

	got, err = s.FilterByRole("ADMIN")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func testRecordsKeepInsertionOrder(t *testing.T, s storage.Storage) {
	all, err := s.Records()
	require.NoError(t, err)
	assert.Empty(t, all)

	add(t, s, types.RoleAdmin, "a")
	add(t, s, types.RoleStudent, "b")
	add(t, s, types.RoleTeacher, "c")

	all, err = s.Records()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(all))
}

func testUpdatePersistsEdits(t *testing.T, s storage.Storage) {
	add(t, s, types.RoleAdmin, "Grace")

	r, err := s.FindByID(1)
	require.NoError(t, err)
	admin, ok := r.(*types.Admin)
	require.True(t, ok)
	admin.SetEmail("g@x.com")
	admin.SetWorkingHours(35)
	require.NoError(t, s.Update(admin))

	r, err = s.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "g@x.com", r.Email())
	assert.Equal(t, 35, r.(*types.Admin).WorkingHours())

	orphan, err := s.Create(types.RoleStudent)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Update(orphan), storage.ErrNotFound)
}

func testRemove(t *testing.T, s storage.Storage) {
	add(t, s, types.RoleTeacher, "Ada")
	add(t, s, types.RoleStudent, "Linus")

	r, err := s.FindByID(1)
	require.NoError(t, err)
	require.NoError(t, s.Remove(r))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.FindByID(1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, s.Remove(r), storage.ErrNotFound)
	assert.ErrorIs(t, s.Remove(nil), storage.ErrNilRecord)
}

func testIDsNotReusedAfterRemove(t *testing.T, s storage.Storage) {
	add(t, s, types.RoleTeacher, "Ada")
	r, err := s.FindByID(1)
	require.NoError(t, err)
	require.NoError(t, s.Remove(r))

	next := add(t, s, types.RoleTeacher, "Grace")
	assert.Equal(t, 2, next.ID())
}
