package benchmark

import (
	"fmt"
	"io"
	"strings"

	"github.com/aleister1102/docdiff/internal/models"
	"github.com/olekukonko/tablewriter"
	"znkr.io/diff"
	"znkr.io/diff/textdiff"
)

// maxExcerptLines caps the unified-diff excerpt rendered per test case.
const maxExcerptLines = 12

// ReportWriter renders a ComparisonResult as a markdown report: one table
// per engine, the recommendation, and an optional unified-diff excerpt per
// test case. The report is a human-facing format, not a strict protocol.
type ReportWriter struct{}

// NewReportWriter creates a new ReportWriter instance
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write renders the full report. Cases may be nil when the result came from
// Compare rather than RunSuite; the excerpt section is skipped then.
func (rw *ReportWriter) Write(w io.Writer, result *models.ComparisonResult, cases []models.TestCase) error {
	if _, err := fmt.Fprintf(w, "# Diff Engine Benchmark Report\n\n"); err != nil {
		return err
	}

	if result.SystemMemTotalMB > 0 {
		if _, err := fmt.Fprintf(w, "System memory during run: %d / %d MB used\n\n",
			result.SystemMemUsedMB, result.SystemMemTotalMB); err != nil {
			return err
		}
	}

	if err := rw.writeEngineTable(w, "LCS Engine", result.LcsResults); err != nil {
		return err
	}
	if err := rw.writeEngineTable(w, "Bit-Diff Engine", result.BitResults); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "## Recommendation\n\n%s\n\nWeighted score difference: %.4f\n",
		result.Recommendation, result.PerformanceDifference); err != nil {
		return err
	}

	if len(cases) > 0 {
		if err := rw.writeExcerpts(w, cases); err != nil {
			return err
		}
	}

	return nil
}

// writeEngineTable renders one engine's results as a markdown table.
func (rw *ReportWriter) writeEngineTable(w io.Writer, title string, results []models.BenchmarkResult) error {
	if _, err := fmt.Fprintf(w, "## %s\n\n", title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Test Case", "Time (ms)", "Memory (KB)", "Diff Count", "Accuracy", "Status"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)

	for _, result := range results {
		status := "ok"
		timeCell := fmt.Sprintf("%.3f", result.ComputationTimeMs)
		if result.Failed {
			status = "failed"
			timeCell = "inf"
		}
		table.Append([]string{
			result.TestCase,
			timeCell,
			fmt.Sprintf("%.1f", float64(result.MemoryDeltaBytes)/1024),
			fmt.Sprintf("%d", result.DiffCount),
			fmt.Sprintf("%.3f", result.Accuracy),
			status,
		})
	}
	table.Render()

	_, err := fmt.Fprintln(w)
	return err
}

// writeExcerpts renders a truncated line-level unified diff per test case so
// reviewers can see what the engines were measured against.
func (rw *ReportWriter) writeExcerpts(w io.Writer, cases []models.TestCase) error {
	if _, err := fmt.Fprintf(w, "\n## Test Case Excerpts\n"); err != nil {
		return err
	}

	for _, testCase := range cases {
		unified := textdiff.Unified(testCase.Original+"\n", testCase.Revised+"\n", diff.Context(1))
		if _, err := fmt.Fprintf(w, "\n### %s\n\n```diff\n%s```\n", testCase.Name, truncateLines(unified, maxExcerptLines)); err != nil {
			return err
		}
	}

	return nil
}

// truncateLines limits s to n lines, appending an ellipsis marker when cut.
func truncateLines(s string, n int) string {
	lines := strings.SplitAfter(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "") + "...\n"
}
