// Package hcl provides the HCL-based implementation of the config.Loader
// interface. It parses `puzzle` blocks from .hcl files and translates them
// into the format-agnostic config.Model.
package hcl
