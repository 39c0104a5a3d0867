// Package tomlconfig provides the TOML implementation of the config.Loader
// interface.
//
//	[[series]]
//	name       = "mersenne"
//	seed       = 0
//	count      = 10
//	operations = ["*2", "+1"]
package tomlconfig

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/vk/recurrence/internal/config"
	"github.com/vk/recurrence/internal/ctxlog"
	"github.com/vk/recurrence/internal/fsutil"
	"github.com/vk/recurrence/internal/instruction"
)

type fileTOML struct {
	Series []seriesTOML `toml:"series"`
}

type seriesTOML struct {
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Seed        *float64      `toml:"seed"`
	Count       *int          `toml:"count"`
	Operations  operationList `toml:"operations"`
}

// operationList accepts either an array of tokens or one
// whitespace-delimited string.
type operationList []string

// UnmarshalTOML implements toml.Unmarshaler.
func (o *operationList) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*o = append(operationList{}, instruction.Fields(v)...)
		return nil
	case []any:
		tokens := make(operationList, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("operations[%d] must be a string, got %T", i, item)
			}
			tokens = append(tokens, s)
		}
		*o = tokens
		return nil
	default:
		return fmt.Errorf("operations must be an array or a string, got %T", data)
	}
}

// Loader is the TOML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new TOML series file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".toml"}
}

// Load implements config.Loader. Keys that do not map to a series field are
// rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered TOML files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		var doc fileTOML
		md, err := toml.DecodeFile(file, &doc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML file %s: %w", file, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode TOML file %s: unknown keys %v", file, undecoded)
		}

		for _, s := range doc.Series {
			err := model.Add(&config.Series{
				Name:        s.Name,
				Description: s.Description,
				Seed:        s.Seed,
				Count:       s.Count,
				Operations:  []string(s.Operations),
				Source:      file,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("TOML loading complete.", "files", len(files), "series", len(model.Series))
	return model, nil
}
