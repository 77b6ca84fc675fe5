package ports

import "context"

// PreferenceStore persists small string preferences.
// This is a driven port (implemented by adapters).
type PreferenceStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// All returns every stored preference.
	All(ctx context.Context) (map[string]string, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Preferences provides access to preference operations.
	Preferences() PreferenceStore

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
