package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vk/recurrence/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList struct {
	values []string
	set    bool
}

func (s *stringList) String() string {
	return strings.Join(s.values, " ")
}

func (s *stringList) Set(v string) error {
	s.values = append(s.values, v)
	s.set = true
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Seed and count are accepted as strings so that a malformed value is
// treated the same as a missing one; the app reports both.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("recurrence", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Recurrence - Generates numeric series based on recurrence relationships.

Usage:
  recurrence -s SEED -c COUNT -o OPERATIONS [-o OPERATIONS ...]
  recurrence -f SERIES_FILE [-series NAME] [overrides]

Operations:
  A single operator (+ - * /) followed by a number, e.g. "+3 *2".
  Each term is the previous one with every operation applied in order.

Options:
`)
		flagSet.PrintDefaults()
	}

	seedFlag := flagSet.String("seed", "", "Sets the first term of the series.")
	sFlag := flagSet.String("s", "", "Sets the first term of the series (shorthand).")
	countFlag := flagSet.String("count", "", "Sets the length of the series.")
	cFlag := flagSet.String("c", "", "Sets the length of the series (shorthand).")
	ops := &stringList{}
	flagSet.Var(ops, "operations", `Defines the operations used to create the series, e.g. "+3 *2". May be repeated.`)
	flagSet.Var(ops, "o", "Defines the operations (shorthand).")
	fileFlag := flagSet.String("file", "", "Path to a series file (.hcl, .yaml, .yml, .toml) or a directory of them.")
	fFlag := flagSet.String("f", "", "Path to a series file or directory (shorthand).")
	seriesFlag := flagSet.String("series", "", "Name of the series to use from the series file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(groupOperations(flagSet, args)); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Anything after `--` is taken as operation tokens.
	if ops.set && flagSet.NArg() > 0 {
		ops.values = append(ops.values, flagSet.Args()...)
	} else if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, ok := app.ParseLogLevel(logLevel); !ok {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := app.Config{
		Seed:       parseSeed(firstNonEmpty(*seedFlag, *sFlag)),
		Count:      parseCount(firstNonEmpty(*countFlag, *cFlag)),
		SeriesFile: firstNonEmpty(*fileFlag, *fFlag),
		SeriesName: *seriesFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	}
	if ops.set {
		cfg.Operations = ops.values
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// groupOperations rewrites bare arguments that follow an operations flag into
// further `-o` occurrences, so `-o +3 *2 -c 5` and `-o *2 -1` parse as
// operations followed by regular flags. Arguments after `--` are left as is.
func groupOperations(flagSet *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	inOps := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}

		name, hasValue, ok := flagName(flagSet, arg)
		if !ok {
			if inOps {
				out = append(out, "-o")
			}
			out = append(out, arg)
			continue
		}

		out = append(out, arg)
		inOps = name == "o" || name == "operations"
		if !hasValue && !isBoolFlag(flagSet, name) && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

// flagName reports whether arg names a flag defined on flagSet (or help),
// returning the name and whether the value is attached with `=`.
func flagName(flagSet *flag.FlagSet, arg string) (string, bool, bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false, false
	}
	name := strings.TrimPrefix(arg[1:], "-")
	name, _, hasValue := strings.Cut(name, "=")
	if name == "h" || name == "help" {
		return name, hasValue, true
	}
	if flagSet.Lookup(name) == nil {
		return "", false, false
	}
	return name, hasValue, true
}

func isBoolFlag(flagSet *flag.FlagSet, name string) bool {
	f := flagSet.Lookup(name)
	if f == nil {
		return name == "h" || name == "help"
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && bf.IsBoolFlag()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseSeed returns nil for an empty or malformed seed.
func parseSeed(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Debug("Ignoring unparseable seed.", "value", s, "error", err)
		return nil
	}
	return &v
}

// parseCount returns nil for an empty, malformed or negative count.
func parseCount(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		slog.Debug("Ignoring unparseable count.", "value", s, "error", err)
		return nil
	}
	n := int(v)
	return &n
}
