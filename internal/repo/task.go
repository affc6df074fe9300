package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnumEjaz1/todo/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          BIGSERIAL PRIMARY KEY,
	title       VARCHAR(200) NOT NULL CHECK (btrim(title) <> ''),
	description VARCHAR(1000) NOT NULL DEFAULT '',
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type TaskRepo struct { // PostgreSQL-backed store, ids come from the BIGSERIAL sequence
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{
		pool: pool,
	}
}

// EnsureSchema creates the tasks table when it does not exist yet.
func (r *TaskRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (r *TaskRepo) Create(ctx context.Context, title, description string) (model.Task, error) {
	if err := model.ValidateTitle(title); err != nil {
		return model.Task{}, err
	}
	if err := model.ValidateDescription(description); err != nil {
		return model.Task{}, err
	}

	var t model.Task
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, completed
	`, strings.TrimSpace(title), description).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, bool, error) {
	t, err := scanTask(r.pool.QueryRow(ctx, `
		SELECT id, title, description, completed
		FROM tasks
		WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, false, nil
	}
	if err != nil {
		return model.Task{}, false, fmt.Errorf("get task %d: %w", id, err)
	}
	return t, true, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, completed
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update locks the row, applies the patch in Go so validation matches the
// in-memory store, then writes every column back.
func (r *TaskRepo) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Task{}, false, fmt.Errorf("update task %d: %w", id, err)
	}
	defer tx.Rollback(ctx)

	current, err := scanTask(tx.QueryRow(ctx, `
		SELECT id, title, description, completed
		FROM tasks
		WHERE id = $1
		FOR UPDATE
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, false, nil
	}
	if err != nil {
		return model.Task{}, false, fmt.Errorf("update task %d: %w", id, err)
	}

	updated, err := current.Apply(patch)
	if err != nil {
		return model.Task{}, true, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE tasks
		SET title = $2, description = $3, completed = $4, updated_at = now()
		WHERE id = $1
	`, updated.ID, updated.Title, updated.Description, updated.Completed); err != nil {
		return model.Task{}, true, fmt.Errorf("update task %d: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Task{}, true, fmt.Errorf("update task %d: %w", id, err)
	}
	return updated, true, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}
	return cmd.RowsAffected() > 0, nil
}

// NextID peeks at the sequence without consuming a value.
func (r *TaskRepo) NextID(ctx context.Context) (int64, error) {
	var next int64
	err := r.pool.QueryRow(ctx, `
		SELECT CASE WHEN is_called THEN last_value + 1 ELSE last_value END
		FROM tasks_id_seq
	`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next id: %w", err)
	}
	return next, nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed)
	return t, err
}
