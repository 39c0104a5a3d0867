package app

import (
	"context"
	"fmt"

	"github.com/vk/recurrence/internal/ctxlog"
)

// definition is the fully merged description of the series to generate.
type definition struct {
	name       string
	seed       *float64
	count      *int
	operations []string
}

// resolveDefinition starts from the selected series file entry, if any, and
// overlays every value given on the command line.
func (a *App) resolveDefinition(ctx context.Context) (*definition, error) {
	logger := ctxlog.FromContext(ctx)
	def := &definition{}

	if a.config.SeriesFile != "" {
		if a.loader == nil {
			return nil, fmt.Errorf("no loader configured for series file %s", a.config.SeriesFile)
		}
		model, err := a.loader.Load(ctx, a.config.SeriesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load series file: %w", err)
		}
		s, err := model.Lookup(a.config.SeriesName)
		if err != nil {
			return nil, fmt.Errorf("failed to select series from %s: %w", a.config.SeriesFile, err)
		}
		logger.Debug("Series selected from file.", "series", s.Name, "description", s.Description, "source", s.Source)

		def.name = s.Name
		def.seed = s.Seed
		def.count = s.Count
		def.operations = s.Operations
	}

	if a.config.Seed != nil {
		def.seed = a.config.Seed
	}
	if a.config.Count != nil {
		def.count = a.config.Count
	}
	if a.config.Operations != nil {
		def.operations = a.config.Operations
	}

	return def, nil
}
