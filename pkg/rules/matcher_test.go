package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/filesort/pkg/types"
)

func testRules() []Rule {
	return []Rule{
		{
			Name:         "documents",
			Kind:         KindExtension,
			Patterns:     []string{".txt", ".pdf"},
			OutputFolder: "docs",
		},
		{
			Name:         "reports",
			Kind:         KindPrefix,
			Patterns:     []string{"report"},
			OutputFolder: "reports",
		},
		{
			Name:         "images",
			Kind:         KindExtension,
			Patterns:     []string{".JPG", ".png"},
			OutputFolder: "images",
		},
	}
}

func TestMatcher_Classify(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		expectedFolder string
		expectedRule   string
	}{
		{
			name:           "extension match",
			filename:       "notes.txt",
			expectedFolder: "docs",
			expectedRule:   "documents",
		},
		{
			name:           "earlier rule wins over later",
			filename:       "report.txt",
			expectedFolder: "docs",
			expectedRule:   "documents",
		},
		{
			name:           "prefix match on stem",
			filename:       "report-2026.csv",
			expectedFolder: "reports",
			expectedRule:   "reports",
		},
		{
			name:           "prefix is case-insensitive",
			filename:       "REPORT_final.csv",
			expectedFolder: "reports",
			expectedRule:   "reports",
		},
		{
			name:           "extension pattern case differs from file",
			filename:       "photo.jpg",
			expectedFolder: "images",
			expectedRule:   "images",
		},
		{
			name:           "uppercase filename",
			filename:       "PHOTO.JPG",
			expectedFolder: "images",
			expectedRule:   "images",
		},
		{
			name:         "no rule matches",
			filename:     "xyz.unknownext",
			expectedRule: types.UnmatchedRule,
		},
		{
			name:         "no extension",
			filename:     "Makefile",
			expectedRule: types.UnmatchedRule,
		},
	}

	matcher := NewMatcher(testRules())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.Classify(tt.filename)
			assert.Equal(t, tt.expectedFolder, result.OutputFolder)
			assert.Equal(t, tt.expectedRule, result.RuleName)
			assert.Equal(t, tt.expectedRule != types.UnmatchedRule, result.Matched())
		})
	}
}

func TestMatcher_Classify_EmptyRules(t *testing.T) {
	matcher := NewMatcher(nil)
	result := matcher.Classify("anything.txt")
	assert.False(t, result.Matched())
	assert.Equal(t, types.UnmatchedRule, result.RuleName)
}

func TestMatcher_Classify_UnknownKindNeverMatches(t *testing.T) {
	ruleList := []Rule{
		{
			Name:         "future",
			Kind:         Kind("regex"),
			Patterns:     []string{".*"},
			OutputFolder: "future",
		},
		{
			Name:         "documents",
			Kind:         KindExtension,
			Patterns:     []string{".txt"},
			OutputFolder: "docs",
		},
	}
	matcher := NewMatcher(ruleList)

	// Unknown kinds are skipped, not an error, so later rules still apply
	result := matcher.Classify("notes.txt")
	assert.Equal(t, "documents", result.RuleName)
	assert.Equal(t, "docs", result.OutputFolder)
}

func TestMatcher_Classify_EmptyPatternsNeverMatch(t *testing.T) {
	ruleList := []Rule{
		{
			Name:         "empty",
			Kind:         KindExtension,
			Patterns:     nil,
			OutputFolder: "nowhere",
		},
	}
	matcher := NewMatcher(ruleList)

	result := matcher.Classify("notes.txt")
	assert.False(t, result.Matched())
}

func TestMatcher_Classify_PrefixMatchesFullName(t *testing.T) {
	// Pattern that includes an extension must still match via the full
	// filename check
	ruleList := []Rule{
		{
			Name:         "exact",
			Kind:         KindPrefix,
			Patterns:     []string{"summary.txt"},
			OutputFolder: "summaries",
		},
	}
	matcher := NewMatcher(ruleList)

	result := matcher.Classify("summary.txt")
	assert.Equal(t, "exact", result.RuleName)
}
