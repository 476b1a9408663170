package cli

import (
	"context"
	"fmt"
)

// DoneCommand toggles a task between pending and completed
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	id, err := singleID("id", args)
	if err != nil {
		return c.app.errors.Handle("toggle task", err)
	}
	if err := c.app.board.Load(ctx); err != nil {
		return c.app.errors.Handle("toggle task", err)
	}
	task, err := c.app.board.ToggleComplete(ctx, id)
	if err != nil {
		return c.app.errors.Handle("toggle task", err)
	}
	if task.Completed {
		fmt.Fprintf(c.app.out, "Completed task #%d: %s\n", task.ID, task.Title)
	} else {
		fmt.Fprintf(c.app.out, "Reopened task #%d: %s\n", task.ID, task.Title)
	}
	return nil
}
