// Package config loads and validates filesort's configuration.
//
// Configuration is layered with koanf: embedded defaults first, then the
// user's config file. The file format is chosen by extension: .toml, .yaml,
// .yml or .json. Any load, parse or validation failure is a config error
// (see pkg/errors.IsConfigError) and aborts the run before any file is
// touched.
package config
