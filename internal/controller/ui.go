// Package controller provides output adapters for displaying rewrite runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "recase.dev/pkg/recase/internal/model"
)

// UI defines the interface for reporting a run as it progresses.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayTargets(ctx context.Context, selections []m.Selection)
	DisplayMissingFile(ctx context.Context, path m.Path)
	DisplayFileStart(ctx context.Context, path m.Path)
	DisplayFileResult(ctx context.Context, file m.FileSummary)
	DisplayRunSummary(ctx context.Context, summary m.RunSummary)
	DisplayEstimation(ctx context.Context, summary m.RunSummary) error
	DisplayAudit(ctx context.Context, findings []m.Inconsistency) error
}

// NewUI picks the styled TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
