package domain

import (
	"context"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"recase.dev/pkg/recase/internal/adapter"
	m "recase.dev/pkg/recase/internal/model"
)

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

// CommitOptions controls how a changed file is committed.
type CommitOptions struct {
	DryRun bool
	Diff   bool
}

// CommitResult describes what happened to one file.
type CommitResult struct {
	Changed bool
	Written bool
	Diff    string
}

// Committer writes a file back only when its bytes changed.
type Committer interface {
	Commit(ctx context.Context, file m.File, opts CommitOptions) (CommitResult, error)
}

type committer struct {
	adapter.SourceFSAdapter
}

// NewCommitter creates a Committer writing through fsAdapter.
func NewCommitter(fsAdapter adapter.SourceFSAdapter) Committer {
	return &committer{SourceFSAdapter: fsAdapter}
}

func (c *committer) Commit(ctx context.Context, file m.File, opts CommitOptions) (CommitResult, error) {
	if !file.Changed() {
		return CommitResult{}, nil
	}

	result := CommitResult{Changed: true}

	if opts.Diff {
		diff, err := UnifiedDiff(file)
		if err != nil {
			return result, err
		}

		result.Diff = diff
	}

	if opts.DryRun {
		return result, nil
	}

	if err := c.WriteFile(ctx, file.Path, file.Content); err != nil {
		return result, fmt.Errorf("write %s: %w", file.Path, err)
	}

	result.Written = true

	return result, nil
}

// UnifiedDiff renders the change between the original and current content.
func UnifiedDiff(file m.File) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(file.Original)),
		B:        difflib.SplitLines(string(file.Content)),
		FromFile: "a/" + string(file.Path),
		ToFile:   "b/" + string(file.Path),
		Context:  diffContext,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", file.Path, err)
	}

	return diff, nil
}
