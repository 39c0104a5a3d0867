package hcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/recurrence/internal/ctxlog"
	"github.com/vk/recurrence/internal/instruction"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter evaluates HCL expressions and binds the results to Go values.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeOptional evaluates expr and, unless it is null, decodes it into the
// Go pointer target. It reports whether a value was present.
func (c *Converter) DecodeOptional(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext, target any) (bool, error) {
	val, err := c.evaluate(expr, evalCtx)
	if err != nil {
		return false, err
	}
	if val.IsNull() {
		return false, nil
	}
	if err := c.decode(ctx, val, target); err != nil {
		return false, err
	}
	return true, nil
}

// DecodeOperations evaluates an `operations` attribute. It accepts either a
// list of tokens or a single whitespace-delimited string. A null value
// yields nil; an empty list yields an empty, non-nil slice.
func (c *Converter) DecodeOperations(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	val, err := c.evaluate(expr, evalCtx)
	if err != nil {
		return nil, err
	}
	if val.IsNull() {
		return nil, nil
	}

	if val.Type() == cty.String {
		ctxlog.FromContext(ctx).Debug("Splitting operations string.", "value", val.AsString())
		return append([]string{}, instruction.Fields(val.AsString())...), nil
	}

	var ops []string
	if err := c.decode(ctx, val, &ops); err != nil {
		return nil, err
	}
	if ops == nil {
		ops = []string{}
	}
	return ops, nil
}

func (c *Converter) evaluate(expr hcl.Expression, evalCtx *hcl.EvalContext) (cty.Value, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, fmt.Errorf("value is not known")
	}
	return val, nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		logger.Debug("Could not imply cty.Type from Go type, attempting direct decoding.", "go_type", valPtr.Elem().Type().String(), "error", err)
		return gocty.FromCtyValue(val, goVal)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
