package cli

import (
	"context"
)

// EndCommand handles the end action
type EndCommand struct {
	session *Session
}

// NewEndCommand creates a new end command handler
func NewEndCommand(session *Session) *EndCommand {
	return &EndCommand{session: session}
}

// Execute saves the list and finishes the session. When the save fails the
// session keeps running so the user can retry.
func (c *EndCommand) Execute(ctx context.Context) error {
	s := c.session
	if err := s.service.Save(ctx); err != nil {
		return err
	}
	s.logger.Debug("task file saved", "path", s.service.Path(), "tasks", s.service.Len())
	s.prompter.Println(msgExiting)
	s.state = stateExited
	return nil
}
