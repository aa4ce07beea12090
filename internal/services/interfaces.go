package services

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/repository/jsonfile"
)

// TaskService defines the task list operations used by the command loop
type TaskService interface {
	// Load replaces the in-memory list with the persisted one. On any load
	// failure the list is left empty and the result says why.
	Load(ctx context.Context) jsonfile.LoadResult

	// Save persists the whole list in order.
	Save(ctx context.Context) error

	// Add appends a validated task.
	Add(task domain.Task) error

	// Edit replaces one field of the task at the 1-based position.
	Edit(position int, field domain.Field, value domain.Task) error

	// Delete removes the task at the 1-based position.
	Delete(position int) error

	// List returns the tasks in order.
	List() []domain.Task

	// Len returns the number of tasks.
	Len() int

	// Path returns the task file location.
	Path() string
}
