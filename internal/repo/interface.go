package repo

import (
	"context"

	"github.com/AnumEjaz1/todo/internal/model"
)

// TaskRepository owns the canonical task collection. A missing id is reported
// through the bool result, never as an error.
type TaskRepository interface {
	Create(ctx context.Context, title, description string) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, bool, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	NextID(ctx context.Context) (int64, error)
}
