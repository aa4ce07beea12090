package validation

import (
	"unicode/utf8"

	"tasklist/internal/domain"
)

// TaskValidator provides validation for complete Task values
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTask checks every Task invariant and reports all violations at once.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", string(task.Priority), "must be one of C, H, N, L")
	}
	if !tv.validator.IsCanonicalDate(task.Date) {
		validationError.AddInvalidFormatError("date", task.Date, "yyyy-mm-dd")
	}
	if !tv.validator.IsCanonicalTime(task.Time) {
		validationError.AddInvalidFormatError("time", task.Time, "hh:mm")
	}
	if len(task.Lines) == 0 {
		validationError.AddRequiredError("task")
	}
	for _, line := range task.Lines {
		if utf8.RuneCountInString(line) != domain.LineWidth {
			validationError.AddInvalidValueError("task", line, "every line must be exactly 44 characters")
			break
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTasks validates a whole sequence, stopping at the first invalid task.
func (tv *TaskValidator) ValidateTasks(tasks []domain.Task) error {
	for _, task := range tasks {
		if err := tv.ValidateTask(task); err != nil {
			return err
		}
	}
	return nil
}
