package cli

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	app      *App
	status   string
	category string
	format   string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// BindFlags declares the list filters
func (c *ListCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.status, "status", "s", "", "Status filter: all, pending, completed, today or overdue")
	fs.StringVarP(&c.category, "category", "c", "", "Only tasks in this category (name or id)")
	fs.StringVarP(&c.format, "format", "f", "", "Output format: table or json (default from TM_LIST_DEFAULT_FORMAT)")
}

// Execute lists the visible tasks. Arguments are joined into a free-text query.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	criteria, err := c.criteria(ctx, args)
	if err != nil {
		return c.app.errors.Handle("list tasks", err)
	}

	if err := c.app.board.Load(ctx); err != nil {
		return c.app.errors.Handle("list tasks", err)
	}
	categories, err := c.app.svc.Categories.List(ctx)
	if err != nil {
		return c.app.errors.Handle("list tasks", err)
	}

	title := services.Title(criteria, categories)
	tasks := c.app.board.Visible(criteria)

	format := c.format
	if format == "" {
		format = c.app.cfg.Display.ListFormat
	}
	p := c.app.printer()
	switch strings.ToLower(format) {
	case "json":
		return p.json(struct {
			Title string        `json:"title"`
			Tasks []domain.Task `json:"tasks"`
		}{title, tasks})
	case "", "table":
		return p.taskTable(title, tasks, categories)
	default:
		return c.app.errors.Handle("list tasks", errors.NewInvalidInputError("format", format, "expected table or json"))
	}
}

func (c *ListCommand) criteria(ctx context.Context, args []string) (services.FilterCriteria, error) {
	status, err := services.ParseStatusFilter(c.status)
	if err != nil {
		return services.FilterCriteria{}, errors.NewInvalidInputError("status", c.status, err.Error())
	}
	criteria := services.FilterCriteria{
		Query:  strings.Join(args, " "),
		Status: status,
	}
	if c.category != "" {
		category, err := c.app.resolveCategory(ctx, c.category)
		if err != nil {
			return services.FilterCriteria{}, err
		}
		criteria.CategoryID = &category.ID
	}
	return criteria, nil
}
