package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/laboratoriolopez/labsite/internal/db"
)

// ErrNotFound is returned when a session id has no row.
var ErrNotFound = errors.New("session not found")

// SessionStore persists sessions in SQLite.
type SessionStore struct {
	db *db.DB
}

// NewStore creates a SessionStore backed by the given database.
func NewStore(database *db.DB) *SessionStore {
	return &SessionStore{db: database}
}

// Create inserts a new session with a random id.
func (s *SessionStore) Create(ctx context.Context) (*Session, error) {
	return s.CreateWithID(ctx, uuid.New().String())
}

// CreateWithID inserts a new session under id.
func (s *SessionStore) CreateWithID(ctx context.Context, id string) (*Session, error) {
	now := time.Now().UTC()
	sess := Session{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, last_seen) VALUES (?, ?, ?)`,
		sess.ID, sess.CreatedAt, sess.LastSeen,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &sess, nil
}

// Get returns the session with the given id.
func (s *SessionStore) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, last_seen FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.CreatedAt, &sess.LastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting session %s: %w", id, err)
	}
	return &sess, nil
}

// Touch updates the last_seen timestamp of a session.
func (s *SessionStore) Touch(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET last_seen = ? WHERE id = ?`, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("touching session %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a session.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session %s: %w", id, err)
	}
	return nil
}

// Prune deletes sessions last seen before cutoff and returns how many
// were removed.
func (s *SessionStore) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE last_seen < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning sessions: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// PruneEvery runs Prune every interval, removing sessions idle for longer
// than maxIdle, until ctx is done.
func (s *SessionStore) PruneEvery(ctx context.Context, interval, maxIdle time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Prune(ctx, time.Now().Add(-maxIdle))
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("pruning sessions", zap.Error(err))
				}
				continue
			}
			if n > 0 {
				logger.Debug("pruned idle sessions", zap.Int64("removed", n))
			}
		}
	}
}

// Count returns the number of stored sessions.
func (s *SessionStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return n, nil
}
