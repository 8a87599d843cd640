package session

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/paagano/EducationCentreMIS/internal/storage"
	"github.com/paagano/EducationCentreMIS/internal/storage/memory"
	"github.com/paagano/EducationCentreMIS/internal/types"
)

func TestSession_Lifecycle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := memory.New()

	s := New(store, zap.New(core))
	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.False(t, s.StartTime.IsZero())

	r, err := s.Store.Create(types.RoleTeacher)
	require.NoError(t, err)
	require.NoError(t, s.Store.Append(r))

	require.NoError(t, s.Close())
	assert.False(t, s.EndTime.Before(s.StartTime))

	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "session started", entries[0].Message)
	assert.Equal(t, "session ended", entries[1].Message)
	assert.Equal(t, s.ID, entries[1].ContextMap()["sessionID"])
	assert.EqualValues(t, 1, entries[1].ContextMap()["records"])
}

func TestSession_DistinctIDs(t *testing.T) {
	a := New(memory.New(), zap.NewNop())
	b := New(memory.New(), zap.NewNop())
	assert.NotEqual(t, a.ID, b.ID)
}

// brokenCount is a store whose Count always fails.
type brokenCount struct {
	storage.Storage
}

func (brokenCount) Count() (int, error) { return 0, errors.New("count unavailable") }

func TestSession_CloseWhenCountFails(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	s := New(brokenCount{Storage: memory.New()}, zap.New(core))
	require.NoError(t, s.Close())

	warns := logs.FilterMessage("count records at session end").All()
	require.Len(t, warns, 1)
	assert.Equal(t, "count unavailable", warns[0].ContextMap()["error"])

	ended := logs.FilterMessage("session ended").All()
	require.Len(t, ended, 1)
	assert.NotContains(t, ended[0].ContextMap(), "records")
}
