package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/services"
	"task-manager/internal/validation"
	"task-manager/internal/view"
)

// Backend bundles the stores a session runs against
type Backend struct {
	Tasks      services.TaskStore
	Categories services.CategoryStore
	Clock      services.Clock
	Logger     *slog.Logger
	Close      func() error
}

// App represents the main CLI application
type App struct {
	cfg      *config.Config
	backend  *Backend
	svc      *services.ServiceContainer
	board    *view.Board
	log      *slog.Logger
	out      io.Writer
	color    bool
	errors   *ErrorHandler
	registry *CommandRegistry
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(backend *Backend, cfg *config.Config, out io.Writer) *App {
	app := &App{}
	app.init(backend, cfg, out)
	return app
}

// init fills an App in place so commands built before configuration is
// loaded share the same pointer
func (a *App) init(backend *Backend, cfg *config.Config, out io.Writer) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	clock := backend.Clock
	if clock == nil {
		clock = services.SystemClock{}
	}

	a.cfg = cfg
	a.backend = backend
	a.log = logging.OrDiscard(backend.Logger)
	a.svc = services.NewServiceContainer(backend.Tasks, backend.Categories, clock, validation.NewValidatorWithConfig(cfg))
	a.board = view.NewBoard(a.svc, a.log)
	a.out = out
	a.color = useColor(cfg.Display.Color, out)
	a.errors = NewErrorHandler()
	a.registry = NewCommandRegistry(a)
}

// Services exposes the wired service container
func (a *App) Services() *services.ServiceContainer {
	return a.svc
}

// Close releases the backend's resources
func (a *App) Close() error {
	if a.backend == nil || a.backend.Close == nil {
		return nil
	}
	return a.backend.Close()
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// useColor resolves the auto|always|never color mode against the writer
func useColor(mode string, out io.Writer) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// parseID parses a positive task or category id argument
func parseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(raw), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError(field, raw, "must be a positive integer")
	}
	return id, nil
}

// resolveCategory accepts a category id or a case-insensitive name
func (a *App) resolveCategory(ctx context.Context, ref string) (*domain.Category, error) {
	ref = strings.TrimSpace(ref)
	categories, err := a.svc.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if id, err := strconv.ParseInt(strings.TrimPrefix(ref, "#"), 10, 64); err == nil {
		for i := range categories {
			if categories[i].ID == id {
				return &categories[i], nil
			}
		}
		return nil, errors.NewNotFoundError("category", id)
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, ref) {
			return &categories[i], nil
		}
	}
	return nil, errors.NewInvalidInputError("category", ref, "no category with that name")
}

// singleID requires exactly one id argument
func singleID(field string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.NewInvalidInputError(field, strings.Join(args, " "), "expected exactly one id")
	}
	return parseID(field, args[0])
}
