package cli

import (
	"context"
)

// ShowCommand prints a single task
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	id, err := singleID("id", args)
	if err != nil {
		return c.app.errors.Handle("show task", err)
	}
	task, err := c.app.svc.Tasks.Get(ctx, id)
	if err != nil {
		return c.app.errors.Handle("show task", err)
	}
	categories, err := c.app.svc.Categories.List(ctx)
	if err != nil {
		return c.app.errors.Handle("show task", err)
	}
	return c.app.printer().taskDetail(*task, categories)
}
