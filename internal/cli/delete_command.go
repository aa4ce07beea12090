package cli

import (
	"context"
)

// DeleteCommand handles the delete action
type DeleteCommand struct {
	session *Session
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(session *Session) *DeleteCommand {
	return &DeleteCommand{session: session}
}

// Execute shows the table and removes the selected task
func (c *DeleteCommand) Execute(ctx context.Context) error {
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
	if err := s.service.Delete(position); err != nil {
		return err
	}
	s.logger.Debug("task deleted", "position", position)
	p.Println(msgTaskDeleted)
	return nil
}
