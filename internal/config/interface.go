package config

import "context"

// Loader is the interface for a format-specific series file loader.
type Loader interface {
	// Load reads every matching file under the given paths and translates
	// the series they define into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the lower-case file extensions (with the leading dot)
	// the loader understands.
	Extensions() []string
}
