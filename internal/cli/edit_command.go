package cli

import (
	"context"
	"fmt"

	"tasklist/internal/domain"
)

// EditCommand handles the edit action
type EditCommand struct {
	session *Session
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(session *Session) *EditCommand {
	return &EditCommand{session: session}
}

// Execute shows the table, asks for a task and a field, then replaces that
// one field with a newly prompted value.
func (c *EditCommand) Execute(ctx context.Context) error {
	s := c.session
	p := s.prompter

	size := s.service.Len()
	if size == 0 {
		p.Println(msgNoTasks)
		return nil
	}
	if err := s.printTable(); err != nil {
		return err
	}

	position, err := p.PromptTaskNumber(size)
	if err != nil {
		return err
	}
	field, err := p.PromptField()
	if err != nil {
		return err
	}

	value, changed, err := c.promptValue(field)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err := s.service.Edit(position, field, value); err != nil {
		return err
	}
	s.logger.Debug("task edited", "position", position, "field", string(field))
	p.Println(msgTaskChanged)
	return nil
}

// promptValue asks for the new value of field. changed is false when the
// user entered a blank body, which keeps the previous one.
func (c *EditCommand) promptValue(field domain.Field) (domain.Task, bool, error) {
	p := c.session.prompter
	var value domain.Task

	switch field {
	case domain.FieldPriority:
		priority, err := p.PromptPriority()
		if err != nil {
			return value, false, err
		}
		value.Priority = priority
	case domain.FieldDate:
		date, err := p.PromptDate()
		if err != nil {
			return value, false, err
		}
		value.Date = date
	case domain.FieldTime:
		clock, err := p.PromptTime()
		if err != nil {
			return value, false, err
		}
		value.Time = clock
	case domain.FieldTask:
		lines, err := p.PromptBody()
		if err != nil {
			return value, false, err
		}
		if len(lines) == 0 {
			return value, false, nil
		}
		value.Lines = lines
	default:
		return value, false, fmt.Errorf("unsupported field %q", field)
	}
	return value, true, nil
}
