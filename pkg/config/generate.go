package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/filesort/pkg/errors"
)

// Generate marshals a Config back to TOML. Tests use it to round-trip the
// embedded defaults.
func Generate(cfg *Config) (string, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}
