package cli

import (
	"context"
	"fmt"
)

// DeleteCommand removes a task. Categories are never touched.
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := singleID("id", args)
	if err != nil {
		return c.app.errors.Handle("delete task", err)
	}
	if err := c.app.board.Load(ctx); err != nil {
		return c.app.errors.Handle("delete task", err)
	}
	if err := c.app.board.Delete(ctx, id); err != nil {
		return c.app.errors.Handle("delete task", err)
	}
	fmt.Fprintf(c.app.out, "Deleted task #%d\n", id)
	return nil
}
