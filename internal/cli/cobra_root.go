package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/config"
	"task-manager/internal/logging"
)

// BackendFactory opens the stores for a loaded configuration
type BackendFactory func(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	factory BackendFactory
	out     io.Writer
	errOut  io.Writer

	configFile string
}

// NewRootCommand creates the root cobra command with global flags. The
// configuration is loaded and the backend opened right before a subcommand runs.
func NewRootCommand(factory BackendFactory, out, errOut io.Writer) *RootCommand {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	root := &RootCommand{
		app:     &App{},
		factory: factory,
		out:     out,
		errOut:  errOut,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A command-line personal task manager",
		Long: `Task Manager (tm) keeps a personal list of tasks with priorities, due dates
and categories, and serves the same data over a JSON HTTP API.

EXAMPLES:
  tm add "Write report" --due 2026-10-20 -p high -c Work
  tm list                                  # pending first, then by priority and due date
  tm list --status overdue
  tm list -c Work "report"                 # free-text search within a category
  tm done 3                                # toggle completion
  tm edit 3 --due ""                       # clear the due date
  tm stats                                 # counts per filter and progress
  tm categories add Errands --color "#22c55e"
  tm export -o backup.yaml
  tm serve --addr :8080

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults.
  Run "tm config --env" for the full list of TM_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsBackend(cmd) {
				return nil
			}
			return root.setup(cmd)
		},
	}
	root.cmd.SetOut(out)
	root.cmd.SetErr(errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context and releases
// the backend afterwards
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if cerr := r.app.Close(); err == nil {
		err = cerr
	}
	return err
}

// SetArgs replaces os.Args for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// App returns the application the subcommands run against
func (r *RootCommand) App() *App {
	return r.app
}

func skipsBackend(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return false
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configFile, "config", "", "YAML config file (overrides TM_CONFIG)")

	flags.String("store", "", "Store backend: memory, sqlite or postgres (overrides TM_STORE_BACKEND)")
	flags.String("seed", "", "YAML seed file loaded into empty stores (overrides TM_SEED_FILE)")

	flags.String("db-dir", "", "SQLite database directory (overrides TM_DB_DIR)")
	flags.String("db-filename", "", "SQLite database filename (overrides TM_DB_FILENAME)")
	flags.String("db-dsn", "", "Postgres connection string (overrides TM_DB_DSN)")

	flags.String("date-format", "", "Date display layout (overrides TM_DISPLAY_DATE_FORMAT)")
	flags.String("color", "", "Color output: auto, always or never (overrides TM_DISPLAY_COLOR)")
	flags.String("list-format", "", "Default list format (overrides TM_LIST_DEFAULT_FORMAT)")

	flags.Duration("app-timeout", 0, "Command timeout (overrides TM_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TM_APP_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
}

// overrides collects only the flags set on the command line
func (r *RootCommand) overrides(flags *pflag.FlagSet) *config.ConfigOverrides {
	o := &config.ConfigOverrides{}
	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	o.StoreBackend = str("store")
	o.SeedFile = str("seed")
	o.DBDir = str("db-dir")
	o.DBFilename = str("db-filename")
	o.DBDSN = str("db-dsn")
	o.DateFormat = str("date-format")
	o.Color = str("color")
	o.ListFormat = str("list-format")
	o.LogLevel = str("log-level")

	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		o.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		o.Verbose = &v
	}
	if flags.Changed("addr") {
		v, _ := flags.GetString("addr")
		o.ServerAddress = &v
	}
	return o
}

// setup loads the configuration, builds the logger and opens the backend
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if r.configFile != "" {
		loader = config.NewLoaderWithFile(r.configFile)
	}
	cfg, err := loader.LoadWithOverrides(r.overrides(cmd.Flags()))
	if err != nil {
		return err
	}

	log := logging.New(r.errOut, cfg.Application.LogLevel, cfg.Application.Verbose)
	backend, err := r.factory(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	if backend.Logger == nil {
		backend.Logger = log
	}
	r.app.init(backend, cfg, r.out)
	logging.Debugf("backend %s ready", cfg.Store.Backend)
	return nil
}

func (r *RootCommand) timeout() time.Duration {
	if r.app.cfg != nil && r.app.cfg.Application.Timeout > 0 {
		return r.app.cfg.Application.Timeout
	}
	return 60 * time.Second
}

// bind wires a command handler into a cobra command. Handler flags are
// declared on the cobra command and parsed by cobra.
func (r *RootCommand) bind(cmd *cobra.Command, handler Command, withTimeout bool) *cobra.Command {
	if binder, ok := handler.(FlagBinder); ok {
		binder.BindFlags(cmd.Flags())
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if withTimeout {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout())
			defer cancel()
		}
		return handler.Execute(ctx, args)
	}
	return cmd
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	app := r.app

	listCmd := r.bind(&cobra.Command{
		Use:   "list [query]",
		Short: "List tasks",
		Long: `List tasks matching every given filter, incomplete tasks first, then by
descending priority, then by due date with undated tasks last.

The query matches the title or description, case-insensitively.
Status filters: all, pending, completed, today (due today, done or not),
overdue (due before today and not done).`,
		Aliases: []string{"ls"},
	}, NewListCommand(app), true)

	showCmd := r.bind(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
	}, NewShowCommand(app), true)

	addCmd := r.bind(&cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
	}, NewAddCommand(app), true)

	editCmd := r.bind(&cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's fields",
		Long:  `Change only the fields given as flags. --due "" clears the due date and --category none clears the category.`,
		Args:  cobra.ExactArgs(1),
	}, NewEditCommand(app), true)

	doneCmd := r.bind(&cobra.Command{
		Use:     "done <id>",
		Short:   "Toggle a task between pending and completed",
		Aliases: []string{"toggle"},
		Args:    cobra.ExactArgs(1),
	}, NewDoneCommand(app), true)

	deleteCmd := r.bind(&cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a task",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
	}, NewDeleteCommand(app), true)

	statsCmd := r.bind(&cobra.Command{
		Use:   "stats",
		Short: "Show filter counts, category counts and progress",
		Args:  cobra.NoArgs,
	}, NewStatsCommand(app), true)

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
	}
	categoriesCmd.AddCommand(
		r.bind(&cobra.Command{
			Use:   "list",
			Short: "List categories",
			Args:  cobra.NoArgs,
		}, NewCategoryListCommand(app), true),
		r.bind(&cobra.Command{
			Use:   "add <name>",
			Short: "Add a category",
			Args:  cobra.MinimumNArgs(1),
		}, NewCategoryAddCommand(app), true),
		r.bind(&cobra.Command{
			Use:   "edit <name|id>",
			Short: "Rename or restyle a category",
			Args:  cobra.ExactArgs(1),
		}, NewCategoryEditCommand(app), true),
		r.bind(&cobra.Command{
			Use:   "delete <name|id>",
			Short: "Delete a category; its tasks become uncategorized",
			Args:  cobra.ExactArgs(1),
		}, NewCategoryDeleteCommand(app), true),
	)

	exportCmd := r.bind(&cobra.Command{
		Use:   "export",
		Short: "Export tasks and categories as YAML",
		Args:  cobra.NoArgs,
	}, NewExportCommand(app), true)

	configCmd := r.bind(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
	}, NewConfigCommand(app), true)

	serveCmd := r.bind(&cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
	}, NewServeCommand(app), false)

	r.cmd.AddCommand(
		listCmd,
		showCmd,
		addCmd,
		editCmd,
		doneCmd,
		deleteCmd,
		statsCmd,
		categoriesCmd,
		exportCmd,
		configCmd,
		serveCmd,
	)
}
