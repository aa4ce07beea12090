package cli

import (
	"context"

	"tasklist/internal/errors"
)

// Action names accepted at the action prompt.
const (
	ActionAdd    = "add"
	ActionPrint  = "print"
	ActionEdit   = "edit"
	ActionDelete = "delete"
	ActionEnd    = "end"
)

// Command represents one action of the interactive session
type Command interface {
	Execute(ctx context.Context) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a registry holding the session's actions
func NewCommandRegistry(session *Session) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register(ActionAdd, NewAddCommand(session))
	registry.Register(ActionPrint, NewPrintCommand(session))
	registry.Register(ActionEdit, NewEditCommand(session))
	registry.Register(ActionDelete, NewDeleteCommand(session))
	registry.Register(ActionEnd, NewEndCommand(session))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Has reports whether name is a registered action
func (r *CommandRegistry) Has(name string) bool {
	_, exists := r.commands[name]
	return exists
}

// Execute runs the named command
func (r *CommandRegistry) Execute(ctx context.Context, name string) error {
	command, exists := r.commands[name]
	if !exists {
		return errors.NewInvalidInputError("action", name, "unknown action")
	}
	return command.Execute(ctx)
}
