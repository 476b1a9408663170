package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// EditCommand applies a partial update to a task. Only flags given on the
// command line are changed.
type EditCommand struct {
	app   *App
	flags *pflag.FlagSet

	title       string
	description string
	due         string
	priority    string
	category    string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// BindFlags declares one flag per editable field
func (c *EditCommand) BindFlags(fs *pflag.FlagSet) {
	c.flags = fs
	fs.StringVarP(&c.title, "title", "t", "", "New title")
	fs.StringVarP(&c.description, "description", "d", "", "New description")
	fs.StringVar(&c.due, "due", "", "New due date (YYYY-MM-DD); empty clears it")
	fs.StringVarP(&c.priority, "priority", "p", "", "New priority: low, medium or high")
	fs.StringVarP(&c.category, "category", "c", "", "New category name or id; \"none\" clears it")
}

func (c *EditCommand) changed(name string) bool {
	return c.flags != nil && c.flags.Changed(name)
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	id, err := singleID("id", args)
	if err != nil {
		return c.app.errors.Handle("edit task", err)
	}

	patch, err := c.patch(ctx)
	if err != nil {
		return c.app.errors.Handle("edit task", err)
	}
	if patch.IsEmpty() {
		return c.app.errors.Handle("edit task", errors.NewInvalidInputError("flags", "", "nothing to change"))
	}

	if err := c.app.board.Load(ctx); err != nil {
		return c.app.errors.Handle("edit task", err)
	}
	task, err := c.app.board.Update(ctx, id, patch)
	if err != nil {
		return c.app.errors.Handle("edit task", err)
	}
	fmt.Fprintf(c.app.out, "Updated task #%d: %s\n", task.ID, task.Title)
	return nil
}

func (c *EditCommand) patch(ctx context.Context) (domain.TaskPatch, error) {
	var patch domain.TaskPatch
	if c.changed("title") {
		patch.Title = &c.title
	}
	if c.changed("description") {
		patch.Description = &c.description
	}
	if c.changed("due") {
		patch.DueDate = &c.due
	}
	if c.changed("priority") {
		p, err := domain.ParsePriority(c.priority)
		if err != nil {
			return patch, errors.NewInvalidInputError("priority", c.priority, err.Error())
		}
		patch.Priority = &p
	}
	if c.changed("category") {
		var id int64
		if ref := strings.TrimSpace(c.category); ref != "" && !strings.EqualFold(ref, "none") {
			category, err := c.app.resolveCategory(ctx, ref)
			if err != nil {
				return patch, err
			}
			id = category.ID
		}
		patch.CategoryID = &id
	}
	return patch, nil
}
