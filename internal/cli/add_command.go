package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// AddCommand creates a task
type AddCommand struct {
	app         *App
	description string
	due         string
	priority    string
	category    string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// BindFlags declares the optional task fields
func (c *AddCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.description, "description", "d", "", "Task description")
	fs.StringVar(&c.due, "due", "", "Due date (YYYY-MM-DD)")
	fs.StringVarP(&c.priority, "priority", "p", "", "Priority: low, medium or high (default medium)")
	fs.StringVarP(&c.category, "category", "c", "", "Category name or id")
}

// Execute runs the add command. All arguments form the title.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	input := domain.TaskInput{
		Title:       strings.Join(args, " "),
		Description: c.description,
		DueDate:     c.due,
	}

	if c.priority != "" {
		p, err := domain.ParsePriority(c.priority)
		if err != nil {
			return c.app.errors.Handle("add task", errors.NewInvalidInputError("priority", c.priority, err.Error()))
		}
		input.Priority = p
	}
	if c.category != "" {
		category, err := c.app.resolveCategory(ctx, c.category)
		if err != nil {
			return c.app.errors.Handle("add task", err)
		}
		input.CategoryID = &category.ID
	}

	task, err := c.app.board.Create(ctx, input)
	if err != nil {
		return c.app.errors.Handle("add task", err)
	}
	fmt.Fprintf(c.app.out, "Created task #%d: %s\n", task.ID, task.Title)
	return nil
}
