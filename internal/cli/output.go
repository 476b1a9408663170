package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"task-manager/internal/domain"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

// printer renders tasks and categories for the terminal
type printer struct {
	out        io.Writer
	color      bool
	dateFormat string
	today      domain.Date
}

func (a *App) printer() *printer {
	format := a.cfg.Display.DateFormat
	if format == "" {
		format = domain.DateLayout
	}
	return &printer{
		out:        a.out,
		color:      a.color,
		dateFormat: format,
		today:      domain.DateOf(a.svc.Clock.Now()),
	}
}

func (p *printer) paint(code, s string) string {
	if !p.color || s == "" {
		return s
	}
	return code + s + ansiReset
}

func (p *printer) priority(pr domain.Priority) string {
	switch pr {
	case domain.PriorityHigh:
		return p.paint(ansiRed, string(pr))
	case domain.PriorityMedium:
		return p.paint(ansiYellow, string(pr))
	case domain.PriorityLow:
		return p.paint(ansiGreen, string(pr))
	default:
		return "-"
	}
}

func (p *printer) due(t domain.Task) string {
	if t.DueDate == nil {
		return "-"
	}
	s := fmt.Sprintf("%s (%s)", t.DueDate.In(time.Local).Format(p.dateFormat), relativeDue(*t.DueDate, p.today))
	if t.IsOverdue(p.today) {
		return p.paint(ansiRed, s)
	}
	return s
}

// relativeDue describes a due date relative to today in whole days
func relativeDue(due, today domain.Date) string {
	switch {
	case due.Equal(today):
		return "today"
	case due.Equal(today.AddDays(1)):
		return "tomorrow"
	case due.Equal(today.AddDays(-1)):
		return "yesterday"
	}
	return humanize.RelTime(due.In(time.UTC), today.In(time.UTC), "ago", "from now")
}

func categoryLabel(categories []domain.Category, id *int64) string {
	if name, ok := domain.CategoryName(categories, id); ok {
		return name
	}
	return "-"
}

// taskTable prints a heading followed by one row per task
func (p *printer) taskTable(title string, tasks []domain.Task, categories []domain.Category) error {
	fmt.Fprintln(p.out, p.paint(ansiBold, title))
	if len(tasks) == 0 {
		fmt.Fprintln(p.out, "No tasks found")
		return nil
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tDUE\tCATEGORY\tTITLE")
	for _, t := range tasks {
		done := " "
		title := t.Title
		if t.Completed {
			done = "x"
			title = p.paint(ansiDim, title)
		}
		fmt.Fprintf(tw, "%d\t[%s]\t%s\t%s\t%s\t%s\n",
			t.ID, done, p.priority(t.Priority), p.due(t), categoryLabel(categories, t.CategoryID), title)
	}
	return tw.Flush()
}

// taskDetail prints every field of one task
func (p *printer) taskDetail(t domain.Task, categories []domain.Category) error {
	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", t.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", p.paint(ansiBold, t.Title))
	if t.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", t.Description)
	}
	fmt.Fprintf(tw, "Priority:\t%s\n", p.priority(t.Priority))
	fmt.Fprintf(tw, "Due:\t%s\n", p.due(t))
	fmt.Fprintf(tw, "Category:\t%s\n", categoryLabel(categories, t.CategoryID))
	status := "pending"
	if t.Completed {
		status = "completed"
	}
	fmt.Fprintf(tw, "Status:\t%s\n", status)
	fmt.Fprintf(tw, "Created:\t%s (%s)\n", t.CreatedAt.Local().Format(p.dateFormat+" 15:04"), humanize.Time(t.CreatedAt))
	if t.CompletedAt != nil {
		fmt.Fprintf(tw, "Completed:\t%s\n", t.CompletedAt.Local().Format(p.dateFormat+" 15:04"))
	}
	return tw.Flush()
}

// categoryTable prints categories with their pending task counts
func (p *printer) categoryTable(categories []domain.Category, pending map[int64]int) error {
	if len(categories) == 0 {
		fmt.Fprintln(p.out, "No categories found")
		return nil
	}
	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tICON\tPENDING")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.Name, c.Color, c.Icon, pending[c.ID])
	}
	return tw.Flush()
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// progressBar draws a fixed-width bar for a 0-100 percentage
func progressBar(percent float64, width int) string {
	filled := int(percent/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
