// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses `series` and `locals` blocks, evaluates their expressions with a
// small cty function library, and binds the results to Go values.
//
//	locals {
//	  step = 2
//	}
//
//	series "mersenne" {
//	  seed       = 0
//	  count      = 10
//	  operations = ["*${local.step}", "+1"]
//	}
package hcl
