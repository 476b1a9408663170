// Package seed loads starter data from YAML into empty stores and exports
// store contents back to the same format.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"task-manager/internal/domain"
	"task-manager/internal/services"
)

// File is the YAML document layout
type File struct {
	Categories []Category `yaml:"categories"`
	Tasks      []Task     `yaml:"tasks"`
}

// Category is a category entry. ID is only used to link tasks within the file.
type Category struct {
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
	Icon  string `yaml:"icon,omitempty"`
}

// Task is a task entry. Dates are YYYY-MM-DD and timestamps RFC 3339.
type Task struct {
	ID          int64  `yaml:"id,omitempty"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	DueDate     string `yaml:"due_date,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
	CategoryID  int64  `yaml:"category_id,omitempty"`
	Completed   bool   `yaml:"completed,omitempty"`
	CreatedAt   string `yaml:"created_at,omitempty"`
	CompletedAt string `yaml:"completed_at,omitempty"`
}

// Result reports what Load stored
type Result struct {
	Categories int
	Tasks      int
	Skipped    bool
}

// Read decodes a seed document, rejecting unknown keys
func Read(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

// ReadFile reads a seed document from path
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()
	return Read(fh)
}

// Write encodes f as YAML
func Write(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode seed: %w", err)
	}
	return enc.Close()
}

// toDomain converts a seed task. now fills a missing created_at and the
// completion stamp of a completed task that has none.
func (t Task) toDomain(now time.Time) (domain.Task, error) {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("task %d: title is required", t.ID)
	}

	priority, err := domain.ParsePriority(t.Priority)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %q: %w", title, err)
	}
	if priority == domain.PriorityUnset {
		priority = domain.DefaultPriority
	}

	task := domain.Task{
		Title:       title,
		Description: strings.TrimSpace(t.Description),
		Priority:    priority,
		Completed:   t.Completed,
		CreatedAt:   now,
	}

	if t.DueDate != "" {
		due, err := domain.ParseDate(t.DueDate)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %q: %w", title, err)
		}
		task.DueDate = &due
	}
	if t.CategoryID != 0 {
		id := t.CategoryID
		task.CategoryID = &id
	}
	if t.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339Nano, t.CreatedAt)
		if err != nil {
			return domain.Task{}, fmt.Errorf("task %q created_at: %w", title, err)
		}
		task.CreatedAt = created
	}
	if task.Completed {
		at := now
		if t.CompletedAt != "" {
			at, err = time.Parse(time.RFC3339Nano, t.CompletedAt)
			if err != nil {
				return domain.Task{}, fmt.Errorf("task %q completed_at: %w", title, err)
			}
		}
		task.CompletedAt = &at
	}
	return task, nil
}

func fromDomainTask(t domain.Task) Task {
	out := Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
	}
	if t.DueDate != nil {
		out.DueDate = t.DueDate.String()
	}
	if t.CategoryID != nil {
		out.CategoryID = *t.CategoryID
	}
	if t.CompletedAt != nil {
		out.CompletedAt = t.CompletedAt.Format(time.RFC3339Nano)
	}
	return out
}

// Load stores the file's contents when both stores are empty and skips
// otherwise. Category ids in the file are remapped to the ids the store
// assigns; task references to ids missing from the file are kept as is.
func Load(ctx context.Context, f *File, tasks services.TaskStore, categories services.CategoryStore, now time.Time) (Result, error) {
	existingTasks, err := tasks.GetAll(ctx)
	if err != nil {
		return Result{}, err
	}
	existingCategories, err := categories.GetAll(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(existingTasks) > 0 || len(existingCategories) > 0 {
		return Result{Skipped: true}, nil
	}

	// convert everything first so a bad entry stores nothing
	converted := make([]domain.Task, 0, len(f.Tasks))
	for _, t := range f.Tasks {
		task, err := t.toDomain(now)
		if err != nil {
			return Result{}, err
		}
		converted = append(converted, task)
	}
	for _, c := range f.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return Result{}, fmt.Errorf("category %d: name is required", c.ID)
		}
	}

	var res Result
	remap := make(map[int64]int64, len(f.Categories))
	for _, c := range f.Categories {
		stored, err := categories.Create(ctx, domain.Category{
			Name:  strings.TrimSpace(c.Name),
			Color: c.Color,
			Icon:  c.Icon,
		})
		if err != nil {
			return res, err
		}
		if c.ID != 0 {
			remap[c.ID] = stored.ID
		}
		res.Categories++
	}

	for _, task := range converted {
		if task.CategoryID != nil {
			if id, ok := remap[*task.CategoryID]; ok {
				task.CategoryID = &id
			}
		}
		if _, err := tasks.Create(ctx, task); err != nil {
			return res, err
		}
		res.Tasks++
	}
	return res, nil
}

// Export snapshots both stores into a File
func Export(ctx context.Context, tasks services.TaskStore, categories services.CategoryStore) (*File, error) {
	allCategories, err := categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	allTasks, err := tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := &File{
		Categories: make([]Category, 0, len(allCategories)),
		Tasks:      make([]Task, 0, len(allTasks)),
	}
	for _, c := range allCategories {
		f.Categories = append(f.Categories, Category{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon})
	}
	for _, t := range allTasks {
		f.Tasks = append(f.Tasks, fromDomainTask(t))
	}
	return f, nil
}
