package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/storage"
)

// PutSession persists a login session with its tier snapshot.
func (s *Store) PutSession(ctx context.Context, session storage.Session) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.UserID == 0 {
		return fmt.Errorf("session user id is required")
	}
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	if session.ExpiresAt.IsZero() {
		return fmt.Errorf("session expiry is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (id, user_id, username, tier, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    user_id = excluded.user_id,
		    username = excluded.username,
		    tier = excluded.tier,
		    created_at = excluded.created_at,
		    expires_at = excluded.expires_at`,
		session.ID,
		session.UserID,
		session.Username,
		int64(session.Tier),
		toMillis(session.CreatedAt),
		toMillis(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads a live session. Expired sessions resolve as absent so the
// gate treats their callers as anonymous.
func (s *Store) GetSession(ctx context.Context, sessionID string) (storage.Session, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Session{}, false, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return storage.Session{}, false, nil
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, user_id, username, tier, created_at, expires_at
		 FROM sessions
		 WHERE id = ?`,
		sessionID,
	)

	var session storage.Session
	var tier int64
	var createdAt int64
	var expiresAt int64
	if err := row.Scan(&session.ID, &session.UserID, &session.Username, &tier, &createdAt, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return storage.Session{}, false, nil
		}
		return storage.Session{}, false, fmt.Errorf("get session: %w", err)
	}
	session.Tier = access.Tier(tier)
	session.CreatedAt = fromMillis(createdAt)
	session.ExpiresAt = fromMillis(expiresAt)

	if !session.ExpiresAt.After(time.Now().UTC()) {
		return storage.Session{}, false, nil
	}
	return session, true, nil
}

// DeleteSession removes a session. Deleting an unknown id is not an error.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
