package rules

import (
	"github.com/arthur-debert/filesort/pkg/errors"
)

// Kind is the closed set of recognized rule kinds.
type Kind string

const (
	// KindExtension matches on the file's extension
	KindExtension Kind = "extension"

	// KindPrefix matches on the start of the filename or its stem
	KindPrefix Kind = "prefix"
)

// Known reports whether the kind is one of the recognized values.
func (k Kind) Known() bool {
	return k == KindExtension || k == KindPrefix
}

// Rule maps filenames to a destination category folder.
type Rule struct {
	// Name identifies the rule in reports and logs
	Name string `koanf:"name" toml:"name" yaml:"name" json:"name"`

	// Kind selects the matching strategy
	Kind Kind `koanf:"type" toml:"type" yaml:"type" json:"type"`

	// Patterns are matched case-insensitively, in order
	Patterns []string `koanf:"patterns" toml:"patterns" yaml:"patterns" json:"patterns"`

	// OutputFolder is the category folder matched files are routed to
	OutputFolder string `koanf:"output_folder" toml:"output_folder" yaml:"output_folder" json:"output_folder"`
}

// Validate checks the rule list for configuration mistakes. The matcher
// itself tolerates anything, but a config that names an unknown kind or an
// empty pattern list is a user error worth failing loudly on.
func Validate(ruleList []Rule) error {
	for i, rule := range ruleList {
		if rule.Name == "" {
			return errors.Newf(errors.ErrRuleInvalid, "rule %d has no name", i)
		}
		if !rule.Kind.Known() {
			return errors.Newf(errors.ErrRuleInvalid,
				"rule %q has unknown type %q (want %q or %q)",
				rule.Name, rule.Kind, KindExtension, KindPrefix)
		}
		if len(rule.Patterns) == 0 {
			return errors.Newf(errors.ErrRuleInvalid, "rule %q has no patterns", rule.Name)
		}
		for _, p := range rule.Patterns {
			if p == "" {
				return errors.Newf(errors.ErrRuleInvalid, "rule %q has an empty pattern", rule.Name)
			}
		}
		if rule.OutputFolder == "" {
			return errors.Newf(errors.ErrRuleInvalid, "rule %q has no output_folder", rule.Name)
		}
	}
	return nil
}
