package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"task-manager/internal/seed"
)

// ExportCommand writes every task and category as a YAML seed document
type ExportCommand struct {
	app    *App
	output string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// BindFlags declares the output flag
func (c *ExportCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.output, "output", "o", "", "Write to this file instead of stdout")
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	f, err := seed.Export(ctx, c.app.backend.Tasks, c.app.backend.Categories)
	if err != nil {
		return c.app.errors.Handle("export data", err)
	}

	if c.output == "" {
		return seed.Write(c.app.out, f)
	}

	file, err := os.Create(c.output)
	if err != nil {
		return c.app.errors.Handle("export data", err)
	}
	if err := seed.Write(file, f); err != nil {
		file.Close()
		return c.app.errors.Handle("export data", err)
	}
	if err := file.Close(); err != nil {
		return c.app.errors.Handle("export data", err)
	}
	fmt.Fprintf(c.app.out, "Exported %d tasks and %d categories to %s\n", len(f.Tasks), len(f.Categories), c.output)
	return nil
}
