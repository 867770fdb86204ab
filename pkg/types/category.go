// Category entity for grouping tasks.
package types

// Category represents a user-defined grouping of tasks. Tasks reference a
// category by ID; the reference is cleared when the category is deleted.
type Category struct {
	Meta

	// Name is the human-readable name (required, non-blank after
	// trimming).
	Name string `json:"name"`

	// Color is an optional display hint (hex string or named color).
	Color string `json:"color,omitempty"`
}

// RecordMeta returns the category's system metadata.
func (c *Category) RecordMeta() *Meta { return &c.Meta }

// Clone returns a copy of the category.
func (c *Category) Clone() *Category {
	cp := *c
	return &cp
}
