package controller

import (
	"context"

	"github.com/spf13/cobra"

	m "recase.dev/pkg/recase/internal/model"
)

// SimpleUI implements UI by printing plain lines to the cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

func (s *SimpleUI) report() reporter {
	return reporter{out: s.cmd.OutOrStdout(), paint: plainPalette}
}

// DisplayTargets prints how many files each target set resolved to.
func (s *SimpleUI) DisplayTargets(ctx context.Context, selections []m.Selection) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.report().targets(selections)
}

// DisplayMissingFile reports a target file that does not exist.
func (s *SimpleUI) DisplayMissingFile(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.report().missing(path)
}

// DisplayFileStart prints the progress line for path.
func (s *SimpleUI) DisplayFileStart(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.report().start(path)
}

// DisplayFileResult prints the per-entry counts of one file.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, file m.FileSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.report().fileResult(file)
}

// DisplayRunSummary prints the grand total.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.report().runSummary(summary)
}

// DisplayEstimation prints the dry-run table of pending changes.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.report().printf("\n%s", renderEstimationTable(summary))

	return nil
}

// DisplayAudit prints the spelling audit findings.
func (s *SimpleUI) DisplayAudit(ctx context.Context, findings []m.Inconsistency) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(findings) == 0 {
		s.report().printf("No unconverted spellings found\n")
		return nil
	}

	s.report().printf("\n%s", renderAuditTable(findings))

	return nil
}
