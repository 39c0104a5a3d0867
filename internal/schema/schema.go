// Package schema holds the gohcl decoding targets for HCL series files.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Series represents a `series` block. Value attributes are kept as
// expressions so they can be evaluated against locals and functions.
// Missing attributes decode to an expression that evaluates to null.
type Series struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Seed        hcl.Expression `hcl:"seed,optional"`
	Count       hcl.Expression `hcl:"count,optional"`
	Operations  hcl.Expression `hcl:"operations,optional"`
}

// Locals represents a `locals` block. Its attributes become `local.<name>`
// in series expressions.
type Locals struct {
	Body hcl.Body `hcl:",remain"`
}

// File represents the top-level structure of an HCL series file.
type File struct {
	Locals []*Locals `hcl:"locals,block"`
	Series []*Series `hcl:"series,block"`
}
