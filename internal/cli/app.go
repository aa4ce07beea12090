package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"tasklist/internal/config"
	"tasklist/internal/render"
	"tasklist/internal/repository/jsonfile"
	"tasklist/internal/services"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App wires configuration, storage and the terminal together
type App struct {
	config   *config.Config
	in       io.Reader
	out      io.Writer
	logger   *log.Logger
	service  services.TaskService
	renderer *render.TableRenderer
}

// NewApp creates the application for cfg. Prompts and the table go to out.
func NewApp(cfg *config.Config, in io.Reader, out io.Writer, logger *log.Logger) (*App, error) {
	repo, err := jsonfile.New(cfg.Storage.File)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task file: %w", err)
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", cfg.Time.Zone, err)
	}

	profile := render.ProfileFor(cfg.Display.Color, isTerminal(out))
	renderer := render.NewTableRenderer(profile, location, func() time.Time { return timeNow() })

	return &App{
		config:   cfg,
		in:       in,
		out:      out,
		logger:   logger,
		service:  services.NewTaskService(repo),
		renderer: renderer,
	}, nil
}

// NewSession creates an interactive session reading from the app's input
func (a *App) NewSession() *Session {
	return NewSession(a.service, NewPrompter(a.in, a.out), a.renderer, a.logger)
}

// Run starts the interactive session
func (a *App) Run(ctx context.Context) error {
	return a.NewSession().Run(ctx)
}

// Print loads the task file and prints the table once without saving
func (a *App) Print(ctx context.Context) error {
	session := a.NewSession()
	session.Load(ctx)
	return session.registry.Execute(ctx, ActionPrint)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
