package domain

import (
	"context"
	"fmt"
	"log/slog"

	"recase.dev/pkg/recase/internal/adapter"
	"recase.dev/pkg/recase/internal/controller"
	m "recase.dev/pkg/recase/internal/model"
)

// RunArgs are the arguments shared by every rewriting run.
type RunArgs struct {
	Targets []m.TargetSet
	DryRun  bool
	Diff    bool
}

// RenameArgs contains the arguments for an identifier rename run.
type RenameArgs struct {
	RunArgs
	Mapping m.Mapping
	Classes []m.PatternClass
}

// PruneArgs contains the arguments for a removed-symbol pruning run.
type PruneArgs struct {
	RunArgs
	Options PruneOptions
}

// TidyArgs contains the arguments for a comment tidying run.
type TidyArgs struct {
	RunArgs
	Options TidyOptions
}

// AuditArgs contains the arguments for a read-only spelling audit.
type AuditArgs struct {
	Targets []m.TargetSet
	Mapping m.Mapping
	Threads uint
}

// Workflow drives a run end to end: select targets, rewrite each file,
// commit, report.
type Workflow interface {
	Rename(ctx context.Context, args RenameArgs) (m.RunSummary, error)
	Estimate(ctx context.Context, args RenameArgs) (m.RunSummary, error)
	Prune(ctx context.Context, args PruneArgs) (m.RunSummary, error)
	Tidy(ctx context.Context, args TidyArgs) (m.RunSummary, error)
	Audit(ctx context.Context, args AuditArgs) ([]m.Inconsistency, error)
}

// transformFunc rewrites file.Content in place and returns what it did.
type transformFunc func(file *m.File) m.FileSummary

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	Selector
	Committer
	Auditor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	selector Selector,
	committer Committer,
	auditor Auditor,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		Selector:        selector,
		Committer:       committer,
		Auditor:         auditor,
	}
}

func (w *workflow) Rename(ctx context.Context, args RenameArgs) (m.RunSummary, error) {
	transform, err := renameTransform(args)
	if err != nil {
		return m.RunSummary{}, err
	}

	slog.Debug("Starting rename run", "entries", len(args.Mapping), "classes", len(args.Classes), "dryRun", args.DryRun)

	return w.run(ctx, args.RunArgs, transform, false)
}

// Estimate performs a dry-run rename and shows the pending changes as a table.
func (w *workflow) Estimate(ctx context.Context, args RenameArgs) (m.RunSummary, error) {
	transform, err := renameTransform(args)
	if err != nil {
		return m.RunSummary{}, err
	}

	run := args.RunArgs
	run.DryRun = true
	run.Diff = false

	summary, err := w.run(ctx, run, transform, true)
	if err != nil {
		return summary, err
	}

	if err := w.DisplayEstimation(ctx, summary); err != nil {
		slog.Error("Failed to display estimation", "error", err)
		return summary, fmt.Errorf("display: %w", err)
	}

	return summary, nil
}

func (w *workflow) Prune(ctx context.Context, args PruneArgs) (m.RunSummary, error) {
	pruner, err := NewPruner(args.Options)
	if err != nil {
		return m.RunSummary{}, err
	}

	slog.Debug("Starting prune run", "symbols", pruner.Symbols(), "dryRun", args.DryRun)

	return w.run(ctx, args.RunArgs, func(file *m.File) m.FileSummary {
		result := pruner.Prune(file.Content)
		file.Content = result.Content

		return m.FileSummary{Actions: result.Actions, Residuals: result.Residuals}
	}, false)
}

func (w *workflow) Tidy(ctx context.Context, args TidyArgs) (m.RunSummary, error) {
	tidier, err := NewTidier(args.Options)
	if err != nil {
		return m.RunSummary{}, err
	}

	return w.run(ctx, args.RunArgs, func(file *m.File) m.FileSummary {
		result := tidier.Tidy(file.Content)
		file.Content = result.Content

		return m.FileSummary{Rules: result.Rules}
	}, false)
}

func (w *workflow) Audit(ctx context.Context, args AuditArgs) ([]m.Inconsistency, error) {
	if err := args.Mapping.Validate(); err != nil {
		return nil, err
	}

	selections, err := w.selectAll(ctx, args.Targets)
	if err != nil {
		return nil, err
	}

	findings, err := w.Auditor.Audit(ctx, Merge(selections), args.Mapping, args.Threads)
	if err != nil {
		slog.Error("Failed to audit files", "error", err)
		return nil, fmt.Errorf("audit: %w", err)
	}

	if err := w.DisplayAudit(ctx, findings); err != nil {
		return findings, fmt.Errorf("display: %w", err)
	}

	return findings, nil
}

func renameTransform(args RenameArgs) (transformFunc, error) {
	renamer, err := NewRenamer(args.Mapping, args.Classes...)
	if err != nil {
		return nil, err
	}

	return func(file *m.File) m.FileSummary {
		result := renamer.Rename(file.Content)
		file.Content = result.Content

		return m.FileSummary{Entries: result.Entries, Residuals: result.Residuals}
	}, nil
}

// run processes the selected files one after another. The summary is folded
// after every file; a cancelled context stops the run between files.
func (w *workflow) run(ctx context.Context, args RunArgs, transform transformFunc, quiet bool) (m.RunSummary, error) {
	summary := m.RunSummary{DryRun: args.DryRun}

	selections, err := w.selectAll(ctx, args.Targets)
	if err != nil {
		return summary, err
	}

	if !quiet {
		w.DisplayTargets(ctx, selections)
	}

	for _, missing := range missingFiles(selections) {
		slog.Warn("Target file not found", "path", missing)

		if !quiet {
			w.DisplayMissingFile(ctx, missing)
		}

		summary = summary.Add(m.FileSummary{Path: missing, Missing: true})
	}

	for _, path := range Merge(selections) {
		if err := ctx.Err(); err != nil {
			slog.Debug("Run cancelled", "processed", len(summary.Files))
			return summary, err
		}

		if !quiet {
			w.DisplayFileStart(ctx, path)
		}

		fileSummary, err := w.processFile(ctx, path, args, transform)
		if err != nil {
			slog.Error("Failed to process file", "path", path, "error", err)
			return summary, err
		}

		summary = summary.Add(fileSummary)

		if !quiet {
			w.DisplayFileResult(ctx, fileSummary)
		}
	}

	if !quiet {
		w.DisplayRunSummary(ctx, summary)
	}

	slog.Info("Run finished", "files", len(summary.Files), "total", summary.Total, "written", summary.Written, "dryRun", summary.DryRun)

	return summary, nil
}

func (w *workflow) processFile(ctx context.Context, path m.Path, args RunArgs, transform transformFunc) (m.FileSummary, error) {
	content, err := w.ReadFile(ctx, path)
	if err != nil {
		return m.FileSummary{Path: path}, fmt.Errorf("read %s: %w", path, err)
	}

	file := m.NewFile(path, content)

	fileSummary := transform(&file)
	fileSummary.Path = path

	result, err := w.Commit(ctx, file, CommitOptions{DryRun: args.DryRun, Diff: args.Diff})
	if err != nil {
		return fileSummary, err
	}

	fileSummary.Changed = result.Changed
	fileSummary.Written = result.Written
	fileSummary.Diff = result.Diff

	slog.Debug("Processed file", "path", path, "count", fileSummary.Count(), "written", result.Written)

	return fileSummary, nil
}

func (w *workflow) selectAll(ctx context.Context, targets []m.TargetSet) ([]m.Selection, error) {
	if !hasPaths(targets) {
		return nil, ErrNoTargets
	}

	selections := make([]m.Selection, 0, len(targets))

	for _, set := range targets {
		if len(set.Paths) == 0 {
			continue
		}

		selection, err := w.Select(ctx, set)
		if err != nil {
			return nil, fmt.Errorf("select %s: %w", set.Name, err)
		}

		selections = append(selections, selection)
	}

	return selections, nil
}

func hasPaths(targets []m.TargetSet) bool {
	for _, set := range targets {
		if len(set.Paths) > 0 {
			return true
		}
	}

	return false
}

func missingFiles(selections []m.Selection) []m.Path {
	seen := make(map[m.Path]struct{})

	var missing []m.Path

	for _, sel := range selections {
		for _, p := range sel.Missing {
			if _, ok := seen[p]; ok {
				continue
			}

			seen[p] = struct{}{}
			missing = append(missing, p)
		}
	}

	return missing
}
