package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/recurrence/internal/ctxlog"
)

// MultiLoader combines format-specific loaders. Every loader sees all paths
// and picks out the files it understands; the results are merged into one
// Model.
type MultiLoader struct {
	loaders []Loader
}

// NewMultiLoader creates a MultiLoader over the given loaders.
func NewMultiLoader(loaders ...Loader) *MultiLoader {
	return &MultiLoader{loaders: loaders}
}

// Extensions returns the union of the extensions of all loaders.
func (m *MultiLoader) Extensions() []string {
	var exts []string
	for _, l := range m.loaders {
		exts = append(exts, l.Extensions()...)
	}
	return exts
}

// Load implements Loader. A path naming a regular file with an extension no
// loader understands is an error, since it would otherwise be ignored
// silently.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Series file loading started.", "path_count", len(paths))

	if err := m.checkExplicitFiles(paths); err != nil {
		return nil, err
	}

	model := NewModel()
	for _, l := range m.loaders {
		part, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(part); err != nil {
			return nil, err
		}
	}

	logger.Debug("Series file loading complete.", "series", model.Names())
	return model, nil
}

func (m *MultiLoader) checkExplicitFiles(paths []string) error {
	supported := m.Extensions()
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(supported, ext) {
			return fmt.Errorf("unsupported series file %s: extension must be one of %v", path, supported)
		}
	}
	return nil
}
