package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/AnumEjaz1/todo/internal/model"
)

// MemoryTaskRepo keeps tasks in insertion order for the lifetime of the
// process. Ids come from a counter that only moves on successful creates.
type MemoryTaskRepo struct {
	mu     sync.RWMutex
	tasks  []model.Task
	nextID int64
}

func NewMemoryTaskRepo() *MemoryTaskRepo {
	return &MemoryTaskRepo{nextID: 1}
}

func (r *MemoryTaskRepo) Create(_ context.Context, title, description string) (model.Task, error) {
	if err := model.ValidateTitle(title); err != nil {
		return model.Task{}, err
	}
	if err := model.ValidateDescription(description); err != nil {
		return model.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := model.New(r.nextID, strings.TrimSpace(title), description, false)
	if err != nil {
		return model.Task{}, err
	}
	r.tasks = append(r.tasks, t)
	r.nextID++
	return t, nil
}

func (r *MemoryTaskRepo) Get(_ context.Context, id int64) (model.Task, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, false, nil
	}
	return r.tasks[i], true, nil
}

// List returns a snapshot; the caller may modify it freely.
func (r *MemoryTaskRepo) List(_ context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

func (r *MemoryTaskRepo) Update(_ context.Context, id int64, patch model.TaskPatch) (model.Task, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Task{}, false, nil
	}
	updated, err := r.tasks[i].Apply(patch)
	if err != nil {
		return model.Task{}, true, err
	}
	r.tasks[i] = updated
	return updated, true, nil
}

func (r *MemoryTaskRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return true, nil
}

func (r *MemoryTaskRepo) NextID(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID, nil
}

// indexOf must be called with mu held.
func (r *MemoryTaskRepo) indexOf(id int64) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
