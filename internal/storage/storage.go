// Package storage defines the persistence contracts for users, tasks, and
// sessions.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/taskgate/taskgate/internal/access"
)

// ErrEmptyTitle rejects task creation before any store mutation happens.
var ErrEmptyTitle = errors.New("task title is required")

// User is a persisted identity record. Credential holds opaque secret
// material (a bcrypt hash), never the secret itself.
type User struct {
	ID         int64
	Username   string
	Credential string
	Tier       access.Tier
	CreatedAt  time.Time
}

// UserSummary is the admin-facing view of a user row.
type UserSummary struct {
	ID       int64
	Username string
	Tier     access.Tier
}

// Task is an owned work item. Ownership never transfers after creation.
type Task struct {
	ID          int64
	OwnerID     int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// TaskWithOwner joins a task with its owner's username for the admin view.
type TaskWithOwner struct {
	Task
	OwnerUsername string
}

// Session is a durable login session carrying a tier snapshot taken at login
// time. Tier changes after login do not rewrite existing sessions.
type Session struct {
	ID        string
	UserID    int64
	Username  string
	Tier      access.Tier
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Identity converts the session snapshot into a request identity.
func (s Session) Identity() access.Identity {
	return access.Identity{UserID: s.UserID, Username: s.Username, Tier: s.Tier}
}

// UserStore persists identity records. It does not authorize: callers check
// their own tier before mutating.
type UserStore interface {
	// FindByCredentials resolves a user by exact username and matching
	// secret. Unknown usernames and wrong secrets fail identically.
	FindByCredentials(ctx context.Context, username, secret string) (User, bool, error)
	// ListUsers returns every user, stable by primary key.
	ListUsers(ctx context.Context) ([]UserSummary, error)
	// SetTier updates a user's tier and reports whether a row was affected.
	SetTier(ctx context.Context, userID int64, tier access.Tier) (bool, error)
}

// TaskStore persists tasks. Mutations are ownership-oblivious: the route
// layer verifies ownership once, at the boundary, before calling them.
type TaskStore interface {
	// ListForOwner returns the owner's tasks, newest first.
	ListForOwner(ctx context.Context, ownerID int64) ([]Task, error)
	// ListAll returns every task joined with its owner's username, newest
	// first.
	ListAll(ctx context.Context) ([]TaskWithOwner, error)
	// Create inserts a task for the owner and returns its id. Blank titles
	// are rejected with ErrEmptyTitle.
	Create(ctx context.Context, ownerID int64, title, description string) (int64, error)
	// GetTask loads one task by id.
	GetTask(ctx context.Context, taskID int64) (Task, bool, error)
	// SetCompleted updates the completion flag and reports whether a row was
	// affected.
	SetCompleted(ctx context.Context, taskID int64, completed bool) (bool, error)
	// Delete removes a task permanently and reports whether a row was
	// affected.
	Delete(ctx context.Context, taskID int64) (bool, error)
}

// SessionStore persists login sessions.
type SessionStore interface {
	PutSession(ctx context.Context, session Session) error
	// GetSession loads a live session; expired sessions resolve as absent.
	GetSession(ctx context.Context, sessionID string) (Session, bool, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
