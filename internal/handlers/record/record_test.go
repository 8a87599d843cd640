package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paagano/EducationCentreMIS/internal/input"
	"github.com/paagano/EducationCentreMIS/internal/session"
	"github.com/paagano/EducationCentreMIS/internal/storage"
	"github.com/paagano/EducationCentreMIS/internal/storage/memory"
	"github.com/paagano/EducationCentreMIS/internal/storage/sqlite"
	"github.com/paagano/EducationCentreMIS/internal/types"
	"github.com/paagano/EducationCentreMIS/internal/utils/response"
)

// backends runs fn once per storage backend.
func backends(t *testing.T, fn func(t *testing.T, sess *session.Session)) {
	factories := map[string]func(t *testing.T) storage.Storage{
		"memory": func(t *testing.T) storage.Storage { return memory.New() },
		"sqlite": func(t *testing.T) storage.Storage {
			s, err := sqlite.New()
			require.NoError(t, err)
			return s
		},
	}

	for name, newStore := range factories {
		t.Run(name, func(t *testing.T) {
			sess := session.New(newStore(t), zap.NewNop())
			t.Cleanup(func() { _ = sess.Close() })
			fn(t, sess)
		})
	}
}

func count(t *testing.T, sess *session.Session) int {
	t.Helper()
	n, err := sess.Store.Count()
	require.NoError(t, err)
	return n
}

func addTeacherAda(t *testing.T, sess *session.Session) response.Response {
	t.Helper()
	return Add(sess)(input.Lines("1", "Ada", "123", "a@x.com", "-10", "Math", "CS"))
}

func TestAdd_TeacherEndToEnd(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		resp := addTeacherAda(t, sess)
		assert.Equal(t, response.OutcomeCreated, resp.Outcome)
		assert.Equal(t, 1, resp.ID)
		assert.Contains(t, resp.Message, "ID 1")

		rec, err := sess.Store.FindByID(1)
		require.NoError(t, err)
		teacher, ok := rec.(*types.Teacher)
		require.True(t, ok)
		assert.Equal(t, "Ada", teacher.Name())
		assert.Equal(t, 0.0, teacher.Salary())

		out := rec.Display()
		assert.Contains(t, out, "Ada")
		assert.NotContains(t, out, types.UnknownName)
		assert.Contains(t, out, "Salary: 0.00")
	})
}

func TestAdd_StudentBlankFields(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		resp := Add(sess)(input.Lines("student", "", "  ", "", "Art", "", ""))
		require.Equal(t, response.OutcomeCreated, resp.Outcome)

		rec, err := sess.Store.FindByID(resp.ID)
		require.NoError(t, err)
		assert.Equal(t, types.UnknownName, rec.Name())
		assert.Equal(t, "", rec.Telephone())
		assert.Equal(t, "", rec.Email())
		assert.Equal(t, types.RoleStudent, rec.Role())
	})
}

func TestAdd_IDsSharedAcrossRoles(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		add := Add(sess)
		for i, choice := range []string{"3", "2", "1", "Admin"} {
			resp := add(input.Lines(choice, "p"))
			require.Equal(t, response.OutcomeCreated, resp.Outcome)
			assert.Equal(t, i+1, resp.ID)
		}
	})
}

func TestAdd_InvalidRole(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		for _, choice := range []string{"4", "0", "Parent", ""} {
			script := input.Lines(choice, "Ada")
			resp := Add(sess)(script)
			assert.Equal(t, response.OutcomeInvalidRole, resp.Outcome, choice)
			assert.Equal(t, response.StatusError, resp.Status)
			assert.Equal(t, 1, script.Remaining(), "no field prompts after an invalid role")
		}
		assert.Zero(t, count(t, sess))

		// Rejected selections do not consume ids.
		resp := Add(sess)(input.Lines("2", "Grace"))
		assert.Equal(t, 1, resp.ID)
	})
}

func TestViewAll(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		resp := ViewAll(sess)(input.Lines())
		assert.Equal(t, response.OutcomeNoRecords, resp.Outcome)
		assert.Empty(t, resp.Listing)
		assert.Zero(t, count(t, sess))

		addTeacherAda(t, sess)
		Add(sess)(input.Lines("3", "Linus"))

		resp = ViewAll(sess)(input.Lines())
		assert.Equal(t, response.OutcomeListed, resp.Outcome)
		require.Len(t, resp.Listing, 3)
		assert.Equal(t, types.Header(), resp.Listing[0])
		assert.Contains(t, resp.Listing[1], "Ada")
		assert.Contains(t, resp.Listing[2], "Linus")
	})
}

func TestViewByRole(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		addTeacherAda(t, sess)
		Add(sess)(input.Lines("3", "Linus"))
		Add(sess)(input.Lines("1", "Grace"))

		resp := ViewByRole(sess)(input.Lines("teacher"))
		assert.Equal(t, response.OutcomeListed, resp.Outcome)
		require.Len(t, resp.Listing, 3)
		assert.Contains(t, resp.Listing[1], "Ada")
		assert.Contains(t, resp.Listing[2], "Grace")

		resp = ViewByRole(sess)(input.Lines("ADMIN"))
		assert.Equal(t, response.OutcomeNoRecordsForRole, resp.Outcome)

		resp = ViewByRole(sess)(input.Lines("janitor"))
		assert.Equal(t, response.OutcomeInvalidRole, resp.Outcome)
		assert.Empty(t, resp.Listing)
	})
}

func TestEdit(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		addTeacherAda(t, sess)

		resp := Edit(sess)(input.Lines("1", "", "555", "", "2500", "", "Physics"))
		assert.Equal(t, response.OutcomeUpdated, resp.Outcome)

		rec, err := sess.Store.FindByID(1)
		require.NoError(t, err)
		teacher := rec.(*types.Teacher)
		assert.Equal(t, "Ada", teacher.Name())
		assert.Equal(t, "555", teacher.Telephone())
		assert.Equal(t, "a@x.com", teacher.Email())
		assert.Equal(t, 2500.0, teacher.Salary())
		assert.Equal(t, "Math", teacher.Subject1())
		assert.Equal(t, "Physics", teacher.Subject2())
	})
}

func TestEdit_AllBlankLeavesRecordUnchanged(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		Add(sess)(input.Lines("2", "Grace", "456", "g@x.com", "900", "Contract", "35"))
		before, err := sess.Store.FindByID(1)
		require.NoError(t, err)
		want := before.View()

		resp := Edit(sess)(input.Lines("1", "", "", "", "", "", ""))
		assert.Equal(t, response.OutcomeUpdated, resp.Outcome)

		after, err := sess.Store.FindByID(1)
		require.NoError(t, err)
		assert.Equal(t, want, after.View())
	})
}

func TestEdit_InvalidAndMissingID(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		addTeacherAda(t, sess)

		resp := Edit(sess)(input.Lines("abc"))
		assert.Equal(t, response.OutcomeInvalidID, resp.Outcome)

		resp = Edit(sess)(input.Lines("99", "Hacker"))
		assert.Equal(t, response.OutcomeNotFound, resp.Outcome)
		assert.Contains(t, resp.Message, "99")

		rec, err := sess.Store.FindByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Ada", rec.Name())
	})
}

func TestDelete_Confirmed(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		addTeacherAda(t, sess)
		Add(sess)(input.Lines("3", "Linus"))

		script := input.Lines("1", "1")
		resp := Delete(sess)(script)
		assert.Equal(t, response.OutcomeDeleted, resp.Outcome)
		assert.Equal(t, 1, count(t, sess))

		// The record is shown before confirmation.
		require.Len(t, script.Prompts, 2)
		assert.Contains(t, script.Prompts[1], "Ada")
		assert.True(t, strings.HasPrefix(script.Prompts[1], types.Header()))

		_, err := sess.Store.FindByID(1)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDelete_NotConfirmed(t *testing.T) {
	tests := []struct {
		answer string
		want   response.Outcome
	}{
		{"2", response.OutcomeCancelled},
		{"yes", response.OutcomeInvalidChoice},
		{"", response.OutcomeInvalidChoice},
		{"3", response.OutcomeInvalidChoice},
	}

	backends(t, func(t *testing.T, sess *session.Session) {
		addTeacherAda(t, sess)

		for _, tt := range tests {
			resp := Delete(sess)(input.Lines("1", tt.answer))
			assert.Equal(t, tt.want, resp.Outcome, tt.answer)
			assert.Equal(t, 1, count(t, sess), tt.answer)
		}
	})
}

func TestDelete_InvalidAndMissingID(t *testing.T) {
	backends(t, func(t *testing.T, sess *session.Session) {
		addTeacherAda(t, sess)

		resp := Delete(sess)(input.Lines("one"))
		assert.Equal(t, response.OutcomeInvalidID, resp.Outcome)

		resp = Delete(sess)(input.Lines("7", "1"))
		assert.Equal(t, response.OutcomeNotFound, resp.Outcome)
		assert.Equal(t, 7, resp.ID)
		assert.Contains(t, resp.Message, "7")

		assert.Equal(t, 1, count(t, sess))
	})
}
