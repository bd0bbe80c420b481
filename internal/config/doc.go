// Package config defines the format-agnostic puzzle model for the
// application, along with the Loader interface for reading puzzles from
// various sources.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete loaders, such as the one for HCL, are provided in separate
// packages.
package config
