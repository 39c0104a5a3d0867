package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertTerms checks that the run succeeded and printed exactly the given
// terms, one per line, in order.
func AssertTerms(t *testing.T, result *HarnessResult, terms ...string) {
	t.Helper()

	require.NoError(t, result.Err, "run failed; logs:\n%s", result.LogOutput)
	if len(terms) == 0 {
		require.Empty(t, result.Output, "expected no terms to be printed")
		return
	}
	require.Equal(t, terms, result.Lines())
}

// AssertLogged checks that the log output contains every given substring.
func AssertLogged(t *testing.T, result *HarnessResult, substrings ...string) {
	t.Helper()

	for _, s := range substrings {
		require.True(t,
			strings.Contains(result.LogOutput, s),
			"expected log output to contain %q, got:\n%s", s, result.LogOutput,
		)
	}
}
