package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/recurrence/internal/app"
	"github.com/vk/recurrence/internal/config"
	"github.com/vk/recurrence/internal/hcl"
	"github.com/vk/recurrence/internal/tomlconfig"
	"github.com/vk/recurrence/internal/yamlconfig"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Dir       string
}

// Lines returns the non-empty output lines.
func (r *HarnessResult) Lines() []string {
	trimmed := strings.TrimSuffix(r.Output, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// RunIntegrationTest writes the given files into a temporary directory and
// runs the app with every series loader available. When cfg.SeriesFile is
// relative it is resolved against that directory; an empty SeriesFile with
// files present points at the directory itself.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	switch {
	case cfg.SeriesFile != "" && !filepath.IsAbs(cfg.SeriesFile):
		cfg.SeriesFile = filepath.Join(tmpDir, cfg.SeriesFile)
	case cfg.SeriesFile == "" && len(files) > 0:
		cfg.SeriesFile = tmpDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	loader := config.NewMultiLoader(hcl.NewLoader(), yamlconfig.NewLoader(), tomlconfig.NewLoader())

	err := app.NewApp(out, logs, &cfg, loader).Run(ctx)

	if os.Getenv("RECURRENCE_TEST_LOGS") == "true" {
		t.Logf("--- APP LOGS ---\n%s", logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
		Dir:       tmpDir,
	}
}
