package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"tasklist/internal/config"
	"tasklist/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(in io.Reader, out, errOut io.Writer) *RootCommand {
	root := &RootCommand{
		in:     in,
		out:    out,
		errOut: errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "tasklist",
		Short: "An interactive terminal task list",
		Long: `tasklist keeps a list of tasks with a priority, due date and due time.

Run it without arguments to start the interactive session, then type one of
the actions add, print, edit, delete or end. The list is loaded from the task
file on start and written back on end.

PRIORITIES:
  C critical, H high, N normal, L low

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Config file: $XDG_CONFIG_HOME/tasklist/config.toml (override with TASKLIST_CONFIG or --config)

  TASKLIST_FILE                          Task file (default: tasklist.json)
  TASKLIST_TIMEZONE                      Zone that decides "today" (default: Local)
  TASKLIST_COLOR                         always, never or auto (default: always)
  TASKLIST_VERBOSE                       Enable verbose logging (default: false)
  TASKLIST_DEBUG                         Enable debug logging when set

EXAMPLES:
  tasklist                               # Start the interactive session
  tasklist --file work.json              # Use another task file
  tasklist print --color never           # Print the table once without colour`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.newApp(cmd)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringP("file", "f", "", "Task file (overrides TASKLIST_FILE)")
	flags.String("timezone", "", "Time zone used to decide today (overrides TASKLIST_TIMEZONE)")
	flags.String("color", "", "Colour mode: always, never or auto (overrides TASKLIST_COLOR)")
	flags.String("config", "", "Config file (overrides TASKLIST_CONFIG)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TASKLIST_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the task table once",
		Long:  "Load the task file and print the table without starting the interactive session. The file is not modified.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := r.newApp(cmd)
			if err != nil {
				return err
			}
			return app.Print(cmd.Context())
		},
	}

	r.cmd.AddCommand(printCmd)
}

// newApp loads the configuration for cmd and builds the application
func (r *RootCommand) newApp(cmd *cobra.Command) (*App, error) {
	cfg, source, err := r.getConfigFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	opts := logging.DefaultOptions()
	opts.Verbose = cfg.Application.Verbose
	logger := logging.New(r.errOut, opts)
	if source != "" {
		logger.Debug("configuration loaded", "file", source)
	}
	logger.Debug("using task file", "path", cfg.Storage.File, "timezone", cfg.Time.Zone, "color", cfg.Display.Color)

	return NewApp(cfg, r.in, r.out, logger)
}

// getConfigFromFlags loads the configuration, applying only the flags the
// user actually set
func (r *RootCommand) getConfigFromFlags(cmd *cobra.Command) (*config.Config, string, error) {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("file") {
		file, _ := flags.GetString("file")
		overrides.File = &file
	}
	if flags.Changed("timezone") {
		zone, _ := flags.GetString("timezone")
		overrides.TimeZone = &zone
	}
	if flags.Changed("color") {
		color, _ := flags.GetString("color")
		overrides.Color = &color
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	loader := config.NewLoader()
	if configPath, _ := flags.GetString("config"); configPath != "" {
		loader = loader.WithConfigPath(configPath)
	}

	cfg, err := loader.LoadWithOverrides(overrides)
	if err != nil {
		return nil, "", err
	}
	return cfg, loader.Source(), nil
}
