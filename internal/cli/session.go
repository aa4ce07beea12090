package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"tasklist/internal/render"
	"tasklist/internal/repository/jsonfile"
	"tasklist/internal/services"
)

type sessionState int

const (
	stateRunning sessionState = iota
	stateExited
)

// Session is one interactive run: it owns the task list for its lifetime and
// reads actions until the user ends it.
type Session struct {
	service      services.TaskService
	prompter     *Prompter
	renderer     *render.TableRenderer
	registry     *CommandRegistry
	logger       *log.Logger
	errorHandler *ErrorHandler
	state        sessionState
}

// NewSession creates a session over an already constructed service
func NewSession(service services.TaskService, prompter *Prompter, renderer *render.TableRenderer, logger *log.Logger) *Session {
	s := &Session{
		service:      service,
		prompter:     prompter,
		renderer:     renderer,
		logger:       logger,
		errorHandler: NewErrorHandler(),
		state:        stateRunning,
	}
	s.registry = NewCommandRegistry(s)
	return s
}

// Exited reports whether the end action completed
func (s *Session) Exited() bool {
	return s.state == stateExited
}

// Load reads the task file into the session. A broken or unreadable file is
// reported and the session starts with an empty list.
func (s *Session) Load(ctx context.Context) jsonfile.LoadResult {
	result := s.service.Load(ctx)
	switch result.Status {
	case jsonfile.LoadStatusLoaded:
		s.logger.Debug("task file loaded", "path", s.service.Path(), "tasks", len(result.Tasks))
	case jsonfile.LoadStatusMissing:
		s.logger.Debug("no task file, starting empty", "path", s.service.Path())
	case jsonfile.LoadStatusParseError:
		s.logger.Debug("task file rejected", "path", s.service.Path(), "err", result.Err)
		s.prompter.Println(msgNotCorrectJSON)
	case jsonfile.LoadStatusReadError:
		s.logger.Error("task file could not be read, starting empty", "path", s.service.Path(), "err", result.Err)
	}
	return result
}

// Run loads the task file and processes actions until end succeeds, the
// input closes or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.Load(ctx)

	for s.state == stateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.prompter.Println(actionPrompt)
		line, err := s.prompter.ReadLine()
		if err != nil {
			s.logger.Warn("input closed, changes not saved", "tasks", s.service.Len())
			return err
		}

		action := strings.ToLower(strings.TrimSpace(line))
		if !s.registry.Has(action) {
			s.prompter.Println(msgInvalidAction)
			continue
		}

		s.logger.Debug("dispatching action", "action", action)
		if err := s.registry.Execute(ctx, action); err != nil {
			if s.errorHandler.IsInputClosed(err) {
				s.logger.Warn("input closed, changes not saved", "action", action)
				return err
			}
			if s.errorHandler.ShouldLog(err) {
				s.logger.Error("action failed", "action", action, "code", s.errorHandler.GetErrorCode(err), "err", err)
			}
			s.prompter.Println(s.errorHandler.HandleSimple(err).Error())
		}
	}
	return nil
}

// printTable renders the current list to the session output
func (s *Session) printTable() error {
	return s.renderer.Render(s.prompter.Out(), s.service.List())
}
