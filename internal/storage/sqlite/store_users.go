package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskgate/taskgate/internal/access"
	"github.com/taskgate/taskgate/internal/storage"
)

// FindByCredentials resolves a user by username and secret.
//
// Unknown usernames and wrong secrets both come back as a plain "not found"
// so responses cannot be used to enumerate usernames.
func (s *Store) FindByCredentials(ctx context.Context, username, secret string) (storage.User, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.User{}, false, fmt.Errorf("storage is not configured")
	}
	username = strings.TrimSpace(username)
	if username == "" || secret == "" {
		return storage.User{}, false, nil
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, username, credential, tier, created_at
		 FROM users
		 WHERE username = ?`,
		username,
	)

	var user storage.User
	var tier int64
	var createdAt int64
	if err := row.Scan(&user.ID, &user.Username, &user.Credential, &tier, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return storage.User{}, false, nil
		}
		return storage.User{}, false, fmt.Errorf("find user by credentials: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Credential), []byte(secret)) != nil {
		return storage.User{}, false, nil
	}

	user.Tier = access.Tier(tier)
	user.CreatedAt = fromMillis(createdAt)
	return user, true, nil
}

// ListUsers returns every user ordered by primary key.
func (s *Store) ListUsers(ctx context.Context) ([]storage.UserSummary, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, username, tier FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var users []storage.UserSummary
	for rows.Next() {
		var summary storage.UserSummary
		var tier int64
		if err := rows.Scan(&summary.ID, &summary.Username, &tier); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		summary.Tier = access.Tier(tier)
		users = append(users, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

// SetTier persists a tier change. Authorization happens at the route layer;
// the store only reports whether the row existed.
func (s *Store) SetTier(ctx context.Context, userID int64, tier access.Tier) (bool, error) {
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	if !tier.Valid() {
		return false, fmt.Errorf("tier %d is out of range", tier)
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE users SET tier = ? WHERE id = ?`,
		int64(tier),
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("set user tier: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set user tier rows affected: %w", err)
	}
	return affected > 0, nil
}

// CreateUser provisions a user with a bcrypt-hashed credential and returns
// the new id. Used by the seed command and test fixtures; there is no
// self-service registration surface.
func (s *Store) CreateUser(ctx context.Context, username, secret string, tier access.Tier) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("username is required")
	}
	if secret == "" {
		return 0, fmt.Errorf("secret is required")
	}
	if !tier.Valid() {
		return 0, fmt.Errorf("tier %d is out of range", tier)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash credential: %w", err)
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (username, credential, tier, created_at) VALUES (?, ?, ?, ?)`,
		username,
		string(hash),
		int64(tier),
		toMillis(time.Now()),
	)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	userID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user id: %w", err)
	}
	return userID, nil
}

// CountUsers reports how many users exist. The seed command uses it to stay
// idempotent.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int64
	row := s.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
