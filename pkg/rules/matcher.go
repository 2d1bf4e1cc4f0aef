package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/types"
	"github.com/rs/zerolog"
)

// Matcher classifies filenames against an ordered rule list
type Matcher struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewMatcher creates a matcher over the given rules. Rule order is match
// order: the first matching rule wins.
func NewMatcher(ruleList []Rule) *Matcher {
	return &Matcher{
		rules:  ruleList,
		logger: logging.GetLogger("rules.matcher"),
	}
}

// Classify matches one filename against the rule list. It is a pure
// function of its inputs: no filesystem access, no mutation.
//
// When no rule matches, the result carries types.UnmatchedRule and an empty
// output folder; the caller substitutes the configured unmatched folder.
func (m *Matcher) Classify(filename string) types.ClassificationResult {
	name := strings.ToLower(filename)
	ext := strings.ToLower(filepath.Ext(filename))
	stem := strings.TrimSuffix(name, ext)

	for _, rule := range m.rules {
		if m.matches(rule, name, stem, ext) {
			m.logger.Debug().
				Str("file", filename).
				Str("rule", rule.Name).
				Str("folder", rule.OutputFolder).
				Msg("File matched rule")
			return types.ClassificationResult{
				OutputFolder: rule.OutputFolder,
				RuleName:     rule.Name,
			}
		}
	}

	m.logger.Debug().Str("file", filename).Msg("No rule matched")
	return types.ClassificationResult{RuleName: types.UnmatchedRule}
}

// matches checks one rule against the pre-normalized name parts. An
// unrecognized kind never matches, so stale rule files keep working when a
// newer config format introduces kinds this version does not know.
func (m *Matcher) matches(rule Rule, name, stem, ext string) bool {
	switch rule.Kind {
	case KindExtension:
		for _, pattern := range rule.Patterns {
			if ext != "" && strings.EqualFold(ext, pattern) {
				return true
			}
		}
	case KindPrefix:
		for _, pattern := range rule.Patterns {
			p := strings.ToLower(pattern)
			if strings.HasPrefix(stem, p) || strings.HasPrefix(name, p) {
				return true
			}
		}
	}
	return false
}
