package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/arthur-debert/filesort/pkg/types"
)

// maxBarWidth caps the cosmetic bar next to each folder count. The bar
// never affects the counts themselves.
const maxBarWidth = 30

// FolderCount pairs a destination folder with its success count, ordered
// for display.
type FolderCount struct {
	Folder string `json:"folder" yaml:"folder"`
	Count  int    `json:"count" yaml:"count"`
}

// SortedCounts returns stats ordered by count descending; ties break on
// folder name so rendering is deterministic.
func SortedCounts(stats map[string]int) []FolderCount {
	counts := make([]FolderCount, 0, len(stats))
	for folder, count := range stats {
		counts = append(counts, FolderCount{Folder: folder, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Folder < counts[j].Folder
	})
	return counts
}

// RenderReport formats the session summary: per-folder counts with
// proportional bars, a totals table, and every error message verbatim in
// the order it occurred.
func RenderReport(result *types.SessionResult) string {
	var b strings.Builder
	divider := strings.Repeat("─", 50)

	title := "filesort report"
	if result.DryRun {
		title += "  " + DryRunStyle.Render("[DRY-RUN] no files were moved")
	}

	b.WriteString("\n" + divider + "\n")
	b.WriteString("  " + TitleStyle.Render(title) + "\n")
	b.WriteString(divider + "\n")

	counts := SortedCounts(result.Stats)
	if len(counts) > 0 {
		b.WriteString("  Files per folder:\n")
		for _, fc := range counts {
			bar := strings.Repeat("#", min(fc.Count, maxBarWidth))
			b.WriteString(fmt.Sprintf("    %-16s %s  %d\n", fc.Folder, bar, fc.Count))
		}
	} else {
		b.WriteString("  " + MutedStyle.Render("No files were moved.") + "\n")
	}

	b.WriteString(renderTotals(result))

	if len(result.Errors) > 0 {
		b.WriteString("  " + ErrorStyle.Render("Errors:") + "\n")
		for _, msg := range result.Errors {
			b.WriteString("    " + msg + "\n")
		}
	}

	return b.String()
}

// renderTotals builds the totals table.
func renderTotals(result *types.SessionResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"processed", "succeeded", "failed", "elapsed"})
	tw.AppendRow(table.Row{
		result.Processed(),
		result.Succeeded(),
		len(result.Errors),
		fmt.Sprintf("%.3fs", result.Elapsed.Seconds()),
	})
	return tw.Render() + "\n"
}
