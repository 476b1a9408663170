package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// CategoryListCommand lists categories with their pending task counts
type CategoryListCommand struct {
	app *App
}

// NewCategoryListCommand creates a new categories list handler
func NewCategoryListCommand(app *App) *CategoryListCommand {
	return &CategoryListCommand{app: app}
}

// Execute runs the categories list command
func (c *CategoryListCommand) Execute(ctx context.Context, args []string) error {
	categories, err := c.app.svc.Categories.List(ctx)
	if err != nil {
		return c.app.errors.Handle("list categories", err)
	}
	tasks, err := c.app.svc.Tasks.List(ctx)
	if err != nil {
		return c.app.errors.Handle("list categories", err)
	}
	return c.app.printer().categoryTable(categories, c.app.svc.Summary.CategoryCounts(tasks))
}

// CategoryAddCommand creates a category
type CategoryAddCommand struct {
	app   *App
	color string
	icon  string
}

// NewCategoryAddCommand creates a new categories add handler
func NewCategoryAddCommand(app *App) *CategoryAddCommand {
	return &CategoryAddCommand{app: app}
}

// BindFlags declares the display flags
func (c *CategoryAddCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.color, "color", "", "Display color (default "+domain.DefaultCategoryColor+")")
	fs.StringVar(&c.icon, "icon", "", "Icon name (default "+domain.DefaultCategoryIcon+")")
}

// Execute runs the categories add command. All arguments form the name.
func (c *CategoryAddCommand) Execute(ctx context.Context, args []string) error {
	category, err := c.app.svc.Categories.Create(ctx, domain.CategoryInput{
		Name:  strings.Join(args, " "),
		Color: c.color,
		Icon:  c.icon,
	})
	if err != nil {
		return c.app.errors.Handle("add category", err)
	}
	fmt.Fprintf(c.app.out, "Created category #%d: %s\n", category.ID, category.Name)
	return nil
}

// CategoryEditCommand renames or restyles a category
type CategoryEditCommand struct {
	app   *App
	flags *pflag.FlagSet
	name  string
	color string
	icon  string
}

// NewCategoryEditCommand creates a new categories edit handler
func NewCategoryEditCommand(app *App) *CategoryEditCommand {
	return &CategoryEditCommand{app: app}
}

// BindFlags declares one flag per editable field
func (c *CategoryEditCommand) BindFlags(fs *pflag.FlagSet) {
	c.flags = fs
	fs.StringVar(&c.name, "name", "", "New name")
	fs.StringVar(&c.color, "color", "", "New display color")
	fs.StringVar(&c.icon, "icon", "", "New icon name")
}

// Execute runs the categories edit command
func (c *CategoryEditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return c.app.errors.Handle("edit category", errors.NewInvalidInputError("category", strings.Join(args, " "), "expected exactly one name or id"))
	}
	category, err := c.app.resolveCategory(ctx, args[0])
	if err != nil {
		return c.app.errors.Handle("edit category", err)
	}

	var patch domain.CategoryPatch
	if c.flags != nil && c.flags.Changed("name") {
		patch.Name = &c.name
	}
	if c.flags != nil && c.flags.Changed("color") {
		patch.Color = &c.color
	}
	if c.flags != nil && c.flags.Changed("icon") {
		patch.Icon = &c.icon
	}
	if patch.Name == nil && patch.Color == nil && patch.Icon == nil {
		return c.app.errors.Handle("edit category", errors.NewInvalidInputError("flags", "", "nothing to change"))
	}

	updated, err := c.app.svc.Categories.Update(ctx, category.ID, patch)
	if err != nil {
		return c.app.errors.Handle("edit category", err)
	}
	fmt.Fprintf(c.app.out, "Updated category #%d: %s\n", updated.ID, updated.Name)
	return nil
}

// CategoryDeleteCommand removes a category. Tasks keep their reference and
// show as uncategorized.
type CategoryDeleteCommand struct {
	app *App
}

// NewCategoryDeleteCommand creates a new categories delete handler
func NewCategoryDeleteCommand(app *App) *CategoryDeleteCommand {
	return &CategoryDeleteCommand{app: app}
}

// Execute runs the categories delete command
func (c *CategoryDeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return c.app.errors.Handle("delete category", errors.NewInvalidInputError("category", strings.Join(args, " "), "expected exactly one name or id"))
	}
	category, err := c.app.resolveCategory(ctx, args[0])
	if err != nil {
		return c.app.errors.Handle("delete category", err)
	}
	if err := c.app.svc.Categories.Delete(ctx, category.ID); err != nil {
		return c.app.errors.Handle("delete category", err)
	}
	fmt.Fprintf(c.app.out, "Deleted category #%d: %s\n", category.ID, category.Name)
	return nil
}
