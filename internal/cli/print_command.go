package cli

import (
	"context"
)

// PrintCommand handles the print action
type PrintCommand struct {
	session *Session
}

// NewPrintCommand creates a new print command handler
func NewPrintCommand(session *Session) *PrintCommand {
	return &PrintCommand{session: session}
}

// Execute prints the task table
func (c *PrintCommand) Execute(ctx context.Context) error {
	if c.session.service.Len() == 0 {
		c.session.prompter.Println(msgNoTasks)
		return nil
	}
	return c.session.printTable()
}
