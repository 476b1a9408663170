package domain

// Category is a named, colored grouping tag assignable to tasks.
// Color and Icon are opaque display tokens.
type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

const (
	DefaultCategoryColor = "#6366f1"
	DefaultCategoryIcon  = "Folder"
)

// CategoryInput carries the fields supplied when creating a category.
type CategoryInput struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryPatch is a partial category update. Nil fields are left untouched.
type CategoryPatch struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// CategoryName resolves a task's category for display. Missing and dangling
// references both resolve to ok=false, meaning uncategorized.
func CategoryName(categories []Category, id *int64) (string, bool) {
	if id == nil {
		return "", false
	}
	for _, c := range categories {
		if c.ID == *id {
			return c.Name, true
		}
	}
	return "", false
}
