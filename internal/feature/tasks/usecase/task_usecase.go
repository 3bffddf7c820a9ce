package usecase

import (
	"context"
	"fmt"

	"todo_backend/internal/feature/tasks/domain/entity"
)

// TaskRepository abstracts the persistence layer for tasks.
type TaskRepository interface {
	// IsValidID reports whether id is a well-formed store identifier.
	IsValidID(id string) bool

	// ListByUser returns the tasks of userEmail in the store's natural order.
	ListByUser(ctx context.Context, userEmail string) ([]entity.Task, error)

	// Create inserts a task and sets its ID.
	Create(ctx context.Context, task *entity.Task) error

	// Update applies patch to the task and returns the number of matched tasks (0 or 1).
	Update(ctx context.Context, id string, patch entity.TaskPatch) (int64, error)

	// Delete removes the task and returns the number of deleted tasks (0 or 1).
	Delete(ctx context.Context, id string) (int64, error)
}

// taskUsecase implements task CRUD.
type taskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new taskUsecase.
func NewTaskUsecase(tasks TaskRepository) *taskUsecase {
	return &taskUsecase{tasks: tasks}
}

// List returns all tasks of the user. A user without tasks gets an empty slice.
func (u *taskUsecase) List(ctx context.Context, userEmail string) ([]entity.Task, error) {
	tasks, err := u.tasks.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []entity.Task{}
	}
	return tasks, nil
}

// Create stores a new task and sets its generated ID.
func (u *taskUsecase) Create(ctx context.Context, task *entity.Task) error {
	if err := u.tasks.Create(ctx, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update applies a partial update. The id is validated first, then the patch,
// and only then is the store touched.
func (u *taskUsecase) Update(ctx context.Context, id string, patch entity.TaskPatch) error {
	if !u.tasks.IsValidID(id) {
		return ErrInvalidTaskID
	}
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	matched, err := u.tasks.Update(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if matched == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task.
func (u *taskUsecase) Delete(ctx context.Context, id string) error {
	if !u.tasks.IsValidID(id) {
		return ErrInvalidTaskID
	}

	deleted, err := u.tasks.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if deleted == 0 {
		return ErrTaskNotFound
	}
	return nil
}
