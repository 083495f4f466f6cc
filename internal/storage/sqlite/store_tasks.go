package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/taskgate/taskgate/internal/storage"
)

// ListForOwner returns the owner's tasks newest first.
func (s *Store) ListForOwner(ctx context.Context, ownerID int64) ([]storage.Task, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, owner_id, title, description, completed, created_at
		 FROM tasks
		 WHERE owner_id = ?
		 ORDER BY created_at DESC, id DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks for owner: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tasks []storage.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

// ListAll returns every task joined with its owner's username, newest first.
func (s *Store) ListAll(ctx context.Context) ([]storage.TaskWithOwner, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT t.id, t.owner_id, t.title, t.description, t.completed, t.created_at, u.username
		 FROM tasks t
		 JOIN users u ON t.owner_id = u.id
		 ORDER BY t.created_at DESC, t.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list all tasks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var tasks []storage.TaskWithOwner
	for rows.Next() {
		var item storage.TaskWithOwner
		var description sql.NullString
		var completed int64
		var createdAt int64
		if err := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Title,
			&description,
			&completed,
			&createdAt,
			&item.OwnerUsername,
		); err != nil {
			return nil, fmt.Errorf("scan joined task row: %w", err)
		}
		item.Description = description.String
		item.Completed = completed != 0
		item.CreatedAt = fromMillis(createdAt)
		tasks = append(tasks, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate joined task rows: %w", err)
	}
	return tasks, nil
}

// Create inserts a task and returns its id. Blank titles never reach the
// database.
func (s *Store) Create(ctx context.Context, ownerID int64, title, description string) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, storage.ErrEmptyTitle
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO tasks (owner_id, title, description, completed, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		ownerID,
		title,
		strings.TrimSpace(description),
		toMillis(time.Now()),
	)
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	taskID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create task id: %w", err)
	}
	return taskID, nil
}

// GetTask loads one task by id.
func (s *Store) GetTask(ctx context.Context, taskID int64) (storage.Task, bool, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Task{}, false, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, owner_id, title, description, completed, created_at
		 FROM tasks
		 WHERE id = ?`,
		taskID,
	)
	task, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return storage.Task{}, false, nil
		}
		return storage.Task{}, false, fmt.Errorf("get task: %w", err)
	}
	return task, true, nil
}

// SetCompleted updates the completion flag and reports whether a row was
// affected.
func (s *Store) SetCompleted(ctx context.Context, taskID int64, completed bool) (bool, error) {
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE tasks SET completed = ? WHERE id = ?`,
		boolToInt(completed),
		taskID,
	)
	if err != nil {
		return false, fmt.Errorf("set task completed: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set task completed rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a task permanently and reports whether a row was affected.
func (s *Store) Delete(ctx context.Context, taskID int64) (bool, error) {
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete task rows affected: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (storage.Task, error) {
	var task storage.Task
	var description sql.NullString
	var completed int64
	var createdAt int64
	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&description,
		&completed,
		&createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return storage.Task{}, err
		}
		return storage.Task{}, fmt.Errorf("scan task row: %w", err)
	}
	task.Description = description.String
	task.Completed = completed != 0
	task.CreatedAt = fromMillis(createdAt)
	return task, nil
}
