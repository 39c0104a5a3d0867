package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/recurrence/internal/ctxlog"
	"github.com/vk/recurrence/internal/instruction"
	"github.com/vk/recurrence/internal/series"
)

// Diagnostics printed to the output writer when a required value is missing.
// The run still ends without an error.
const (
	MsgSeedNotProvided       = "Seed not provided."
	MsgCountNotProvided      = "Count not provided."
	MsgOperationsNotProvided = "Unable to parse operations."
)

// Run executes the main application logic: it resolves the series
// definition, parses its operations and writes one term per line.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	def, err := a.resolveDefinition(ctx)
	if err != nil {
		return err
	}

	switch {
	case def.seed == nil:
		return a.diagnose(MsgSeedNotProvided)
	case def.count == nil:
		return a.diagnose(MsgCountNotProvided)
	case def.operations == nil:
		return a.diagnose(MsgOperationsNotProvided)
	}

	tokens := instruction.Fields(def.operations...)
	instructions, parseErrs := instruction.ParseAll(tokens)
	for _, err := range parseErrs {
		var pe *instruction.ParseError
		if errors.As(err, &pe) {
			logger.Warn("Discarding unparseable operation.", "token", pe.Token, "reason", pe.Err)
			continue
		}
		logger.Warn("Discarding unparseable operation.", "error", err)
	}
	logger.Debug("Operations parsed.", "tokens", len(tokens), "instructions", len(instructions))

	gen, err := series.New(*def.seed, *def.count, instructions)
	if err != nil {
		return fmt.Errorf("invalid series %q: %w", def.name, err)
	}

	written := 0
	for term := range gen.Terms() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.outW, series.Format(term)); err != nil {
			return fmt.Errorf("failed to write term %d: %w", written, err)
		}
		written++
	}

	logger.Info("Series generated.", "series", def.name, "seed", *def.seed, "terms", written, "instructions", len(instructions))
	return nil
}

func (a *App) diagnose(msg string) error {
	a.logger.Debug("Required value missing, stopping.", "message", msg)
	if _, err := fmt.Fprintln(a.outW, msg); err != nil {
		return fmt.Errorf("failed to write diagnostic: %w", err)
	}
	return nil
}
