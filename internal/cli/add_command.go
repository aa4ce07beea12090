package cli

import (
	"context"

	"tasklist/internal/domain"
)

// AddCommand handles the add action
type AddCommand struct {
	session *Session
}

// NewAddCommand creates a new add command handler
func NewAddCommand(session *Session) *AddCommand {
	return &AddCommand{session: session}
}

// Execute prompts for every field of a new task and appends it. A blank body
// leaves the list unchanged.
func (c *AddCommand) Execute(ctx context.Context) error {
	p := c.session.prompter

	priority, err := p.PromptPriority()
	if err != nil {
		return err
	}
	date, err := p.PromptDate()
	if err != nil {
		return err
	}
	clock, err := p.PromptTime()
	if err != nil {
		return err
	}
	lines, err := p.PromptBody()
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}

	if err := c.session.service.Add(domain.NewTask(priority, date, clock, lines)); err != nil {
		return err
	}
	c.session.logger.Debug("task added", "position", c.session.service.Len())
	return nil
}
