package services

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/repository/jsonfile"
	"tasklist/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          jsonfile.Repository
	tasks         *domain.TaskList
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance with an empty list
func NewTaskService(repo jsonfile.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		tasks:         domain.NewTaskList(nil),
		taskValidator: validation.NewTaskValidator(),
	}
}

// Load replaces the list with the file contents
func (s *taskServiceImpl) Load(ctx context.Context) jsonfile.LoadResult {
	result := s.repo.Load(ctx)
	if result.Status == jsonfile.LoadStatusLoaded {
		s.tasks = domain.NewTaskList(result.Tasks)
	} else {
		s.tasks = domain.NewTaskList(nil)
	}
	return result
}

// Save writes the list to the file
func (s *taskServiceImpl) Save(ctx context.Context) error {
	return s.repo.Save(ctx, s.tasks.List())
}

// Add validates and appends a task
func (s *taskServiceImpl) Add(task domain.Task) error {
	if err := s.taskValidator.ValidateTask(task); err != nil {
		return errors.NewValidationError("invalid task", err)
	}
	return s.tasks.Add(task)
}

// Edit validates the edited task before replacing the field
func (s *taskServiceImpl) Edit(position int, field domain.Field, value domain.Task) error {
	current, err := s.tasks.Get(position)
	if err != nil {
		return err
	}

	candidate := current.Clone()
	switch field {
	case domain.FieldPriority:
		candidate.Priority = value.Priority
	case domain.FieldDate:
		candidate.Date = value.Date
	case domain.FieldTime:
		candidate.Time = value.Time
	case domain.FieldTask:
		candidate.Lines = value.Lines
	default:
		return errors.NewInvalidInputError("field", string(field), "unknown field")
	}
	if err := s.taskValidator.ValidateTask(candidate); err != nil {
		return errors.NewValidationError("invalid "+string(field), err)
	}

	return s.tasks.Edit(position, field, value)
}

// Delete removes a task
func (s *taskServiceImpl) Delete(position int) error {
	return s.tasks.Delete(position)
}

// List returns a copy of the tasks
func (s *taskServiceImpl) List() []domain.Task {
	return s.tasks.List()
}

// Len returns the number of tasks
func (s *taskServiceImpl) Len() int {
	return s.tasks.Len()
}

// Path returns the task file location
func (s *taskServiceImpl) Path() string {
	return s.repo.Path()
}
