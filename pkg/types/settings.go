// Settings document persisted under its own storage key.
package types

// Settings holds user preferences. Persisted as a single JSON document,
// independent of the record collections.
type Settings struct {
	// DefaultPriority is applied to new tasks created without one.
	DefaultPriority string `json:"default_priority"`

	// DefaultSortKey drives list output when no sort flag is given.
	DefaultSortKey string `json:"default_sort_key"`

	// DefaultSortDesc reverses the default sort direction.
	DefaultSortDesc bool `json:"default_sort_desc"`

	// AssistEndpoint is the base URL of the summarization service.
	// Empty disables the assist command.
	AssistEndpoint string `json:"assist_endpoint,omitempty"`
}

// DefaultSettings returns the settings used when the settings key is absent
// or unreadable.
func DefaultSettings() Settings {
	return Settings{
		DefaultPriority: PriorityMedium,
		DefaultSortKey:  "created_at",
	}
}
