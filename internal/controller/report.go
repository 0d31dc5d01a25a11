package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "recase.dev/pkg/recase/internal/model"
)

const separatorWidth = 60

// palette decorates the fragments of a report line.
type palette struct {
	path  func(string) string
	count func(string) string
	warn  func(string) string
	muted func(string) string
}

func plain(s string) string { return s }

var plainPalette = palette{path: plain, count: plain, warn: plain, muted: plain}

// reporter writes the line-oriented run report shared by every UI.
type reporter struct {
	out   io.Writer
	paint palette
}

func (r reporter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r reporter) separator() {
	r.printf("%s\n", r.paint.muted(strings.Repeat("-", separatorWidth)))
}

func (r reporter) targets(selections []m.Selection) {
	parts := make([]string, 0, len(selections))
	total := 0

	for _, sel := range selections {
		name := sel.Name
		if name == "" {
			name = "target"
		}

		parts = append(parts, fmt.Sprintf("%d %s files", len(sel.Files), name))
		total += len(sel.Files)
	}

	r.printf("Found %s\n", strings.Join(parts, " and "))
	r.printf("Total files: %d\n", total)
	r.separator()
}

func (r reporter) missing(path m.Path) {
	r.printf("%s\n\n", r.paint.warn(fmt.Sprintf("File not found: %s", path)))
}

func (r reporter) start(path m.Path) {
	r.printf("Processing: %s\n", r.paint.path(string(path)))
}

func (r reporter) fileResult(file m.FileSummary) {
	for _, entry := range file.Entries {
		if entry.Total == 0 {
			continue
		}

		r.printf("  %s: %s replacements\n", entry.Rename, r.paint.count(fmt.Sprint(entry.Total)))
	}

	for _, action := range file.Actions {
		r.printf("  %s (%s)\n", action.Description(), r.paint.count(fmt.Sprint(action.Count)))
	}

	for _, rule := range file.Rules {
		if rule.Count == 0 {
			continue
		}

		r.printf("  %s: %s lines\n", rule.Rule, r.paint.count(fmt.Sprint(rule.Count)))
	}

	for _, residual := range file.Residuals {
		r.printf("  %s\n", r.paint.warn(fmt.Sprintf("warning: %d unconverted occurrence(s) of %s", residual.Count, residual.Spelling)))
	}

	if count := file.Count(); count > 0 {
		r.printf("  Total conversions: %s\n", r.paint.count(fmt.Sprint(count)))
	} else {
		r.printf("  %s\n", r.paint.muted("No changes needed"))
	}

	if file.Diff != "" {
		r.printf("%s", file.Diff)
	}

	r.printf("\n")
}

func (r reporter) runSummary(summary m.RunSummary) {
	r.separator()
	r.printf("Total conversions across all files: %s\n", r.paint.count(fmt.Sprint(summary.Total)))

	if summary.Missing > 0 {
		r.printf("%s\n", r.paint.warn(fmt.Sprintf("Files not found: %d", summary.Missing)))
	}

	if summary.DryRun {
		r.printf("%s\n", r.paint.muted(fmt.Sprintf("Dry run: %d file(s) would change, nothing written", len(summary.Changed()))))
	} else {
		r.printf("Files written: %d\n", summary.Written)
	}
}

func renderEstimationTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Changes", "Unconverted"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	pathsCount := 0
	residualTotal := 0

	for _, file := range summary.Files {
		if file.Missing {
			continue
		}

		residuals := 0
		for _, r := range file.Residuals {
			residuals += r.Count
		}

		table.Append([]string{string(file.Path), fmt.Sprintf("%d", file.Count()), fmt.Sprintf("%d", residuals)})

		pathsCount++
		residualTotal += residuals
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", pathsCount),
		fmt.Sprintf("%d", summary.Total),
		fmt.Sprintf("%d", residualTotal),
	})

	table.Render()

	return tableBuffer.String()
}

func renderAuditTable(findings []m.Inconsistency) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Old", "New", "Old Count", "New Count", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, f := range findings {
		status := "pending"
		if f.Mixed() {
			status = "mixed"
		}

		table.Append([]string{
			string(f.Path),
			f.Rename.Old,
			f.Rename.New,
			fmt.Sprintf("%d", f.OldCount),
			fmt.Sprintf("%d", f.NewCount),
			status,
		})
	}

	table.Render()

	return tableBuffer.String()
}
