package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/services"
)

// StatsCommand prints filter counts, per-category pending counts and overall progress
type StatsCommand struct {
	app    *App
	format string
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// BindFlags declares the output format flag
func (c *StatsCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.format, "format", "f", "table", "Output format: table or json")
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.board.Load(ctx); err != nil {
		return c.app.errors.Handle("show stats", err)
	}
	categories, err := c.app.svc.Categories.List(ctx)
	if err != nil {
		return c.app.errors.Handle("show stats", err)
	}
	summary := c.app.board.Summary()

	p := c.app.printer()
	if strings.EqualFold(c.format, "json") {
		return p.json(summary)
	}
	return c.print(summary, categories)
}

func (c *StatsCommand) print(summary services.Summary, categories []domain.Category) error {
	out := c.app.out
	progress := summary.Progress
	fmt.Fprintf(out, "Progress: %s %d/%d completed (%.0f%%)\n\n",
		progressBar(progress.Percent, 20), progress.Completed, progress.Total, progress.Percent)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILTER\tTASKS")
	for _, status := range services.StatusFilters {
		fmt.Fprintf(tw, "%s\t%d\n", status, summary.Counts.Get(status))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(categories) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPENDING")
	for _, category := range categories {
		fmt.Fprintf(tw, "%s\t%d\n", category.Name, summary.Categories[category.ID])
	}
	return tw.Flush()
}
