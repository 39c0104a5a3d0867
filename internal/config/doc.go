// Package config defines the format-agnostic model of series files, along
// with the Loader interface that format-specific packages implement.
//
// The `config.Model` is the only view of series files the `app` package sees.
// Concrete implementations of the interface, such as for HCL, YAML and TOML,
// are provided in separate packages and combined with MultiLoader.
package config
