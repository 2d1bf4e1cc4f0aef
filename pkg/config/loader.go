package config

import (
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/rules"
)

// Config is the fully loaded, validated configuration for one session.
type Config struct {
	Rules    []rules.Rule `koanf:"rules" toml:"rules" yaml:"rules" json:"rules"`
	Settings Settings     `koanf:"settings" toml:"settings" yaml:"settings" json:"settings"`
}

// Load builds the configuration: embedded defaults, then the config file at
// path if non-empty. A file's rules replace the default rules wholesale;
// settings keys merge individually.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, ktoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. Load the config file if one was found
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else {
		logger.Debug().Msg("No config file found, using defaults")
	}

	cfg := &Config{}
	if err := k.Unmarshal("rules", &cfg.Rules); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid rules section")
	}
	if err := k.Unmarshal("settings", &cfg.Settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid settings section")
	}

	if cfg.Settings.UnmatchedFolder == "" {
		cfg.Settings.UnmatchedFolder = DefaultUnmatchedFolder
	}

	if err := rules.Validate(cfg.Rules); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("rules", len(cfg.Rules)).
		Bool("dryRun", cfg.Settings.DryRun).
		Bool("overwrite", cfg.Settings.Overwrite).
		Msg("Configuration loaded")

	return cfg, nil
}

// parserFor picks a koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ktoml.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad,
		"unsupported config format %q (want .toml, .yaml or .json)", filepath.Ext(path))
}
