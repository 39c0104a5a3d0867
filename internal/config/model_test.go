package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestModel_AddRejectsDuplicates(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.Add(&Series{Name: "a", Source: "one.hcl"}))

	err := m.Add(&Series{Name: "a", Source: "two.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one.hcl")
	assert.Contains(t, err.Error(), "two.yaml")
}

func TestModel_AddRejectsUnnamed(t *testing.T) {
	err := NewModel().Add(&Series{Source: "x.toml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestModel_Lookup(t *testing.T) {
	single := NewModel()
	require.NoError(t, single.Add(&Series{Name: "only", Seed: ptr(1.0)}))

	multi := NewModel()
	require.NoError(t, multi.Add(&Series{Name: "b"}))
	require.NoError(t, multi.Add(&Series{Name: "a"}))

	testCases := []struct {
		name       string
		model      *Model
		lookup     string
		expectErr  error
		expectName string
	}{
		{name: "single series by default", model: single, expectName: "only"},
		{name: "single series by name", model: single, lookup: "only", expectName: "only"},
		{name: "multiple by name", model: multi, lookup: "a", expectName: "a"},
		{name: "error - empty model", model: NewModel(), expectErr: ErrNoSeries},
		{name: "error - ambiguous", model: multi, expectErr: ErrAmbiguousSeries},
		{name: "error - unknown name", model: multi, lookup: "c", expectErr: ErrSeriesNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.model.Lookup(tc.lookup)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectName, s.Name)
		})
	}
}

func TestModel_Names(t *testing.T) {
	m := NewModel()
	for _, n := range []string{"c", "a", "b"} {
		require.NoError(t, m.Add(&Series{Name: n}))
	}
	assert.Equal(t, []string{"a", "b", "c"}, m.Names())
}

// fakeLoader returns a fixed model and records the paths it was given.
type fakeLoader struct {
	exts   []string
	model  *Model
	err    error
	called [][]string
}

func (f *fakeLoader) Load(_ context.Context, paths ...string) (*Model, error) {
	f.called = append(f.called, paths)
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

func (f *fakeLoader) Extensions() []string { return f.exts }

func TestMultiLoader_MergesAllLoaders(t *testing.T) {
	dir := t.TempDir()

	first := NewModel()
	require.NoError(t, first.Add(&Series{Name: "from-hcl", Source: "a.hcl"}))
	second := NewModel()
	require.NoError(t, second.Add(&Series{Name: "from-yaml", Source: "b.yaml"}))

	hclLoader := &fakeLoader{exts: []string{".hcl"}, model: first}
	yamlLoader := &fakeLoader{exts: []string{".yaml"}, model: second}

	m := NewMultiLoader(hclLoader, yamlLoader)
	model, err := m.Load(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"from-hcl", "from-yaml"}, model.Names())
	assert.Equal(t, [][]string{{dir}}, hclLoader.called)
	assert.Equal(t, [][]string{{dir}}, yamlLoader.called)
	assert.Equal(t, []string{".hcl", ".yaml"}, m.Extensions())
}

func TestMultiLoader_DuplicateAcrossFormats(t *testing.T) {
	a := NewModel()
	require.NoError(t, a.Add(&Series{Name: "dup", Source: "a.hcl"}))
	b := NewModel()
	require.NoError(t, b.Add(&Series{Name: "dup", Source: "b.toml"}))

	m := NewMultiLoader(&fakeLoader{exts: []string{".hcl"}, model: a}, &fakeLoader{exts: []string{".toml"}, model: b})
	_, err := m.Load(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"dup"`)
}

func TestMultiLoader_PropagatesLoaderError(t *testing.T) {
	boom := errors.New("boom")
	m := NewMultiLoader(&fakeLoader{exts: []string{".hcl"}, err: boom})

	_, err := m.Load(context.Background(), t.TempDir())
	require.ErrorIs(t, err, boom)
}

func TestMultiLoader_RejectsUnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	m := NewMultiLoader(&fakeLoader{exts: []string{".hcl"}, model: NewModel()})
	_, err := m.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported series file")
}

func TestMultiLoader_MissingPath(t *testing.T) {
	m := NewMultiLoader(&fakeLoader{exts: []string{".hcl"}, model: NewModel()})
	_, err := m.Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
