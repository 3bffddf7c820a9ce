package handler

import (
	"todo_backend/internal/api"
	"todo_backend/internal/feature/tasks/domain/entity"
)

// toTaskView drops the owner email and keeps id, title and completed.
func toTaskView(t entity.Task) api.Task {
	return api.Task{ID: t.ID, Title: t.Title, Completed: t.Completed}
}
