// Package cliconfig loads the planargrid CLI's profile file: a small
// YAML document controlling output format and color behavior shared
// across subcommands, with functional-option overrides for flags
// supplied on the command line.
package cliconfig

import "errors"

// ErrUnknownFormat indicates an output_format value outside {"text","json"}.
var ErrUnknownFormat = errors.New("cliconfig: unknown output format")

// Format selects how a Diagram is rendered to stdout.
type Format string

const (
	// Text renders a human-readable summary (the CLI default).
	Text Format = "text"
	// JSON renders the full ParseResult/cycles/filaments as JSON.
	JSON Format = "json"
)

// ColorMode controls whether terminal color escapes are emitted.
type ColorMode string

const (
	// ColorAuto emits color only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways always emits color.
	ColorAlways ColorMode = "always"
	// ColorNever never emits color.
	ColorNever ColorMode = "never"
)

// Config is the resolved CLI profile.
type Config struct {
	Format Format    `yaml:"output_format"`
	Color  ColorMode `yaml:"color"`
}

// Default returns the configuration used when no profile file is found
// and no flags override it: text output, automatic color detection.
func Default() Config {
	return Config{Format: Text, Color: ColorAuto}
}

// Option mutates a Config in place, for applying command-line flag
// overrides on top of a loaded profile.
type Option func(*Config)

// WithFormat overrides the output format.
func WithFormat(f Format) Option {
	return func(c *Config) { c.Format = f }
}

// WithColor overrides the color mode.
func WithColor(m ColorMode) Option {
	return func(c *Config) { c.Color = m }
}

// Apply runs every option against c in order.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}
