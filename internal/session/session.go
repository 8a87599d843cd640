// Package session owns the state of one interactive run: the record store
// (and with it the id counter) and the logger. Handlers receive the
// session explicitly; nothing lives in package-level variables.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/paagano/EducationCentreMIS/internal/storage"
)

type Session struct {
	ID        string
	Store     storage.Storage
	Logger    *zap.Logger
	StartTime time.Time
	EndTime   time.Time
}

// New starts a session over store. The returned session's Logger carries
// the session id on every entry.
func New(store storage.Storage, logger *zap.Logger) *Session {
	id := uuid.New().String()
	s := &Session{
		ID:        id,
		Store:     store,
		Logger:    logger.With(zap.String("sessionID", id)),
		StartTime: time.Now(),
	}

	s.Logger.Info("session started")
	return s
}

// Close ends the session and discards the store.
func (s *Session) Close() error {
	s.EndTime = time.Now()

	fields := []zap.Field{zap.Duration("duration", s.EndTime.Sub(s.StartTime))}
	if count, err := s.Store.Count(); err != nil {
		s.Logger.Warn("count records at session end", zap.Error(err))
	} else {
		fields = append(fields, zap.Int("records", count))
	}
	s.Logger.Info("session ended", fields...)

	if err := s.Store.Close(); err != nil {
		return fmt.Errorf("session.Close: %w", err)
	}
	return nil
}
