package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrNoSeries is returned by Lookup when the model defines nothing.
	ErrNoSeries = errors.New("no series defined")
	// ErrAmbiguousSeries is returned by Lookup when no name is given and the
	// model defines more than one series.
	ErrAmbiguousSeries = errors.New("more than one series defined, select one by name")
	// ErrSeriesNotFound is returned by Lookup for an unknown name.
	ErrSeriesNotFound = errors.New("series not found")
)

// Model is the unified, format-agnostic representation of all loaded series
// files, keyed by series name.
type Model struct {
	Series map[string]*Series
}

// Series is one named series definition. Seed and Count are nil and
// Operations is nil when the file leaves them unset, so command-line values
// can fill the gaps.
type Series struct {
	Name        string
	Description string
	Seed        *float64
	Count       *int
	Operations  []string

	// Source is the file the series was declared in.
	Source string
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{Series: make(map[string]*Series)}
}

// Add registers a series. Names must be unique across all loaded files.
func (m *Model) Add(s *Series) error {
	if s.Name == "" {
		return fmt.Errorf("series in %s has no name", s.Source)
	}
	if existing, ok := m.Series[s.Name]; ok {
		return fmt.Errorf("series %q declared in %s is already declared in %s", s.Name, s.Source, existing.Source)
	}
	m.Series[s.Name] = s
	return nil
}

// Merge adds every series of other to m.
func (m *Model) Merge(other *Model) error {
	for _, name := range other.Names() {
		if err := m.Add(other.Series[name]); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the series names in sorted order.
func (m *Model) Names() []string {
	return slices.Sorted(maps.Keys(m.Series))
}

// Lookup returns the series called name. An empty name selects the only
// series when exactly one is defined.
func (m *Model) Lookup(name string) (*Series, error) {
	if name != "" {
		s, ok := m.Series[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %v)", ErrSeriesNotFound, name, m.Names())
		}
		return s, nil
	}

	switch len(m.Series) {
	case 0:
		return nil, ErrNoSeries
	case 1:
		return m.Series[m.Names()[0]], nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrAmbiguousSeries, m.Names())
	}
}
