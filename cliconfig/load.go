package cliconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML profile at path and merges it over Default(). A
// missing file is not an error: it simply yields Default() with opts
// applied. A malformed file, or a recognized-but-invalid field value, is.
func Load(path string, opts ...Option) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return Config{}, fmt.Errorf("cliconfig: reading %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("cliconfig: parsing %s: %w", path, err)
			}
		}
	}

	cfg.Apply(opts...)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Format {
	case Text, JSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("cliconfig: unknown color mode %q", cfg.Color)
	}

	return nil
}
