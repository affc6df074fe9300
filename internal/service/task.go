package service

import (
	"context"

	"github.com/AnumEjaz1/todo/internal/model"
	"github.com/AnumEjaz1/todo/internal/repo"
)

// TaskService validates input before it reaches the repository. The rules
// are the same ones the repository applies.
type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Add(ctx context.Context, title, description string) (model.Task, error) {
	if err := model.ValidateTitle(title); err != nil {
		return model.Task{}, err
	}
	if err := model.ValidateDescription(description); err != nil {
		return model.Task{}, err
	}
	return s.repo.Create(ctx, title, description)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, bool, error) {
	if err := model.ValidateID(id); err != nil {
		return model.Task{}, false, err
	}
	return s.repo.Get(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id int64, patch model.TaskPatch) (model.Task, bool, error) {
	if err := model.ValidateID(id); err != nil {
		return model.Task{}, false, err
	}
	if err := patch.Validate(); err != nil {
		return model.Task{}, false, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, id int64) (bool, error) {
	if err := model.ValidateID(id); err != nil {
		return false, err
	}
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) MarkComplete(ctx context.Context, id int64) (model.Task, bool, error) {
	return s.setCompleted(ctx, id, true)
}

func (s *TaskService) MarkIncomplete(ctx context.Context, id int64) (model.Task, bool, error) {
	return s.setCompleted(ctx, id, false)
}

func (s *TaskService) setCompleted(ctx context.Context, id int64, completed bool) (model.Task, bool, error) {
	if err := model.ValidateID(id); err != nil {
		return model.Task{}, false, err
	}

	// Missing tasks never reach Update.
	_, ok, err := s.repo.Get(ctx, id)
	if err != nil || !ok {
		return model.Task{}, false, err
	}
	return s.repo.Update(ctx, id, model.TaskPatch{Completed: &completed})
}
