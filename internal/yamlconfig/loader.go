// Package yamlconfig provides the YAML implementation of the config.Loader
// interface.
//
//	series:
//	  - name: mersenne
//	    seed: 0
//	    count: 10
//	    operations: ["*2", "+1"]
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/recurrence/internal/config"
	"github.com/vk/recurrence/internal/ctxlog"
	"github.com/vk/recurrence/internal/fsutil"
	"github.com/vk/recurrence/internal/instruction"
	"gopkg.in/yaml.v3"
)

// fileYAML is the top-level document of a YAML series file.
type fileYAML struct {
	Series []seriesYAML `yaml:"series"`
}

type seriesYAML struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Seed        *float64      `yaml:"seed"`
	Count       *int          `yaml:"count"`
	Operations  operationList `yaml:"operations"`
}

// operationList accepts either a sequence of tokens or one
// whitespace-delimited string.
type operationList []string

func (o *operationList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*o = append(operationList{}, instruction.Fields(value.Value)...)
		return nil
	case yaml.SequenceNode:
		var tokens []string
		if err := value.Decode(&tokens); err != nil {
			return err
		}
		*o = append(operationList{}, tokens...)
		return nil
	default:
		return fmt.Errorf("line %d: operations must be a list or a string", value.Line)
	}
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML series file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load implements config.Loader. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		doc, err := l.loadFile(file)
		if err != nil {
			return nil, err
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

	logger.Debug("YAML loading complete.", "files", len(files), "series", len(model.Series))
	return model, nil
}

// loadFile reads a single YAML file. An empty file defines no series.
func (l *Loader) loadFile(path string) (*fileYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var doc fileYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	return &doc, nil
}
