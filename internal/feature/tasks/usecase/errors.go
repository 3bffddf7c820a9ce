// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrInvalidTaskID is returned when an id is not in the store's native identifier format.
	ErrInvalidTaskID = errors.New("invalid task id")

	// ErrNoFieldsToUpdate is returned when an update carries neither title nor completed.
	ErrNoFieldsToUpdate = errors.New("at least one field (completed or title) must be provided")

	// ErrTaskNotFound is returned when the update or delete target does not exist.
	ErrTaskNotFound = errors.New("task not found")
)
