package domain

import (
	"slices"
	"strconv"

	"tasklist/internal/errors"
)

// Field names one editable attribute of a Task.
type Field string

const (
	FieldPriority Field = "priority"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldTask     Field = "task"
)

// Fields lists the editable fields in prompt order.
var Fields = []Field{FieldPriority, FieldDate, FieldTime, FieldTask}

// IsValid reports whether f is an editable field.
func (f Field) IsValid() bool {
	switch f {
	case FieldPriority, FieldDate, FieldTime, FieldTask:
		return true
	}
	return false
}

// TaskList is the ordered, mutable task store. A task's 1-based position is
// its only identity.
type TaskList struct {
	tasks []Task
}

// NewTaskList creates a store holding copies of the given tasks in order.
func NewTaskList(tasks []Task) *TaskList {
	l := &TaskList{tasks: make([]Task, 0, len(tasks))}
	for _, t := range tasks {
		l.tasks = append(l.tasks, t.Clone())
	}
	return l
}

// Len returns the number of stored tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// IsEmpty reports whether the store holds no tasks.
func (l *TaskList) IsEmpty() bool {
	return len(l.tasks) == 0
}

// Add appends a task. Tasks without body lines are never stored.
func (l *TaskList) Add(task Task) error {
	if len(task.Lines) == 0 {
		return errors.NewValidationError("the task is blank", nil).WithContext("field", string(FieldTask))
	}
	l.tasks = append(l.tasks, task.Clone())
	return nil
}

// List returns a copy of the tasks in insertion order.
func (l *TaskList) List() []Task {
	out := make([]Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns the task at the 1-based position.
func (l *TaskList) Get(position int) (Task, error) {
	i, err := l.index(position)
	if err != nil {
		return Task{}, err
	}
	return l.tasks[i].Clone(), nil
}

// Edit replaces exactly one field of the task at the 1-based position with
// the corresponding field of value.
func (l *TaskList) Edit(position int, field Field, value Task) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}
	switch field {
	case FieldPriority:
		l.tasks[i].Priority = value.Priority
	case FieldDate:
		l.tasks[i].Date = value.Date
	case FieldTime:
		l.tasks[i].Time = value.Time
	case FieldTask:
		if len(value.Lines) == 0 {
			return errors.NewValidationError("the task is blank", nil).WithContext("field", string(FieldTask))
		}
		l.tasks[i].Lines = append([]string(nil), value.Lines...)
	default:
		return errors.NewInvalidInputError("field", string(field), "unknown field")
	}
	return nil
}

// Delete removes the task at the 1-based position; later tasks shift down by one.
func (l *TaskList) Delete(position int) error {
	i, err := l.index(position)
	if err != nil {
		return err
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return nil
}

func (l *TaskList) index(position int) (int, error) {
	if position < 1 || position > len(l.tasks) {
		return 0, errors.NewNotFoundError("task", strconv.Itoa(position))
	}
	return position - 1, nil
}
