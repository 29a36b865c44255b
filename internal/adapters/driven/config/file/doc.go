// Package file provides file-based configuration for casedex.
//
// Settings live in a TOML file, by default ~/.casedex/config.toml.
// The loaded Config is injected at construction; nothing in the core
// reads ambient configuration.
package file
