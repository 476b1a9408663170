package cli

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// FlagBinder is implemented by commands that accept flags
type FlagBinder interface {
	BindFlags(fs *pflag.FlagSet)
}

// CommandFactory builds a fresh command so flag values never leak between runs
type CommandFactory func(app *App) Command

// CommandRegistry manages all available commands
type CommandRegistry struct {
	app      *App
	commands map[string]CommandFactory
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		app:      app,
		commands: make(map[string]CommandFactory),
	}

	registry.Register("list", func(a *App) Command { return NewListCommand(a) })
	registry.Register("show", func(a *App) Command { return NewShowCommand(a) })
	registry.Register("add", func(a *App) Command { return NewAddCommand(a) })
	registry.Register("edit", func(a *App) Command { return NewEditCommand(a) })
	registry.Register("done", func(a *App) Command { return NewDoneCommand(a) })
	registry.Register("delete", func(a *App) Command { return NewDeleteCommand(a) })
	registry.Register("stats", func(a *App) Command { return NewStatsCommand(a) })
	registry.Register("categories list", func(a *App) Command { return NewCategoryListCommand(a) })
	registry.Register("categories add", func(a *App) Command { return NewCategoryAddCommand(a) })
	registry.Register("categories edit", func(a *App) Command { return NewCategoryEditCommand(a) })
	registry.Register("categories delete", func(a *App) Command { return NewCategoryDeleteCommand(a) })
	registry.Register("export", func(a *App) Command { return NewExportCommand(a) })
	registry.Register("config", func(a *App) Command { return NewConfigCommand(a) })

	return registry
}

// Register adds a command to the registry. Subcommands are registered as
// "parent child".
func (r *CommandRegistry) Register(name string, factory CommandFactory) {
	r.commands[name] = factory
}

// Execute runs the specified command with the given arguments, parsing any
// flags the command declares
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	factory, exists := r.commands[commandName]
	if !exists && len(args) > 0 {
		if sub, ok := r.commands[commandName+" "+args[0]]; ok {
			commandName, factory, exists = commandName+" "+args[0], sub, true
			args = args[1:]
		}
	}
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}

	command := factory(r.app)
	if binder, ok := command.(FlagBinder); ok {
		fs := pflag.NewFlagSet(commandName, pflag.ContinueOnError)
		fs.SetOutput(r.app.out)
		binder.BindFlags(fs)
		if err := fs.Parse(args); err != nil {
			return errors.NewInvalidInputError("flags", strings.Join(args, " "), err.Error())
		}
		args = fs.Args()
	}
	return command.Execute(ctx, args)
}

// Names lists the registered command names in order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: tm <command> [flags] [args]; commands: " + strings.Join(r.Names(), ", ")
}
