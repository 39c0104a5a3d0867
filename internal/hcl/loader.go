package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/recurrence/internal/config"
	"github.com/vk/recurrence/internal/ctxlog"
	"github.com/vk/recurrence/internal/fsutil"
	"github.com/vk/recurrence/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	converter *Converter
}

// NewLoader creates a new HCL series file loader.
func NewLoader() *Loader {
	return &Loader{converter: NewConverter()}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".hcl"}
}

// Load parses every .hcl file under paths and translates its series blocks
// into the format-agnostic model. Locals are scoped to the file that
// declares them.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, l.Extensions()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		evalCtx, err := l.evalContext(root.Locals)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate locals in %s: %w", file, err)
		}

		for _, s := range root.Series {
			translated, err := l.translateSeries(ctx, file, s, evalCtx)
			if err != nil {
				return nil, err
			}
			if err := model.Add(translated); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "series", len(model.Series))
	return model, nil
}

// functions is the cty function library available to series expressions.
func functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":    stdlib.AbsoluteFunc,
		"ceil":   stdlib.CeilFunc,
		"concat": stdlib.ConcatFunc,
		"floor":  stdlib.FloorFunc,
		"format": stdlib.FormatFunc,
		"join":   stdlib.JoinFunc,
		"length": stdlib.LengthFunc,
		"lower":  stdlib.LowerFunc,
		"max":    stdlib.MaxFunc,
		"min":    stdlib.MinFunc,
		"pow":    stdlib.PowFunc,
		"split":  stdlib.SplitFunc,
		"upper":  stdlib.UpperFunc,
	}
}

// evalContext evaluates all locals blocks and exposes them as `local.<name>`.
// Locals may use functions but not each other.
func (l *Loader) evalContext(blocks []*schema.Locals) (*hcl.EvalContext, error) {
	base := &hcl.EvalContext{Functions: functions()}

	locals := make(map[string]cty.Value)
	for _, block := range blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, diags
		}
		for name, attr := range attrs {
			if _, exists := locals[name]; exists {
				return nil, fmt.Errorf("duplicate local %q at %s", name, attr.NameRange)
			}
			val, diags := attr.Expr.Value(base)
			if diags.HasErrors() {
				return nil, diags
			}
			locals[name] = val
		}
	}

	return &hcl.EvalContext{
		Functions: base.Functions,
		Variables: map[string]cty.Value{"local": cty.ObjectVal(locals)},
	}, nil
}

// translateSeries converts the HCL-specific series schema into the agnostic model.
func (l *Loader) translateSeries(ctx context.Context, file string, s *schema.Series, evalCtx *hcl.EvalContext) (*config.Series, error) {
	out := &config.Series{
		Name:        s.Name,
		Description: s.Description,
		Source:      file,
	}

	var seed float64
	ok, err := l.converter.DecodeOptional(ctx, s.Seed, evalCtx, &seed)
	if err != nil {
		return nil, fmt.Errorf("series %q in %s: invalid seed: %w", s.Name, file, err)
	}
	if ok {
		out.Seed = &seed
	}

	var count int
	ok, err = l.converter.DecodeOptional(ctx, s.Count, evalCtx, &count)
	if err != nil {
		return nil, fmt.Errorf("series %q in %s: invalid count: %w", s.Name, file, err)
	}
	if ok {
		out.Count = &count
	}

	out.Operations, err = l.converter.DecodeOperations(ctx, s.Operations, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("series %q in %s: invalid operations: %w", s.Name, file, err)
	}

	return out, nil
}
