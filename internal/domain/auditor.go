package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"recase.dev/pkg/recase/internal/adapter"
	m "recase.dev/pkg/recase/internal/model"
)

// Auditor finds files that still carry old spellings of mapped properties.
// It never modifies anything.
type Auditor interface {
	Audit(ctx context.Context, paths []m.Path, mapping m.Mapping, threads uint) ([]m.Inconsistency, error)
}

type auditor struct {
	adapter.SourceFSAdapter
}

// NewAuditor creates an Auditor reading through fsAdapter.
func NewAuditor(fsAdapter adapter.SourceFSAdapter) Auditor {
	return &auditor{SourceFSAdapter: fsAdapter}
}

type spellingPair struct {
	rename   m.Rename
	old, new word
}

// Audit reads paths concurrently, at most threads at a time (0 means
// unbounded), and returns the findings ordered as paths are.
func (a *auditor) Audit(ctx context.Context, paths []m.Path, mapping m.Mapping, threads uint) ([]m.Inconsistency, error) {
	pairs := make([]spellingPair, 0, len(mapping))
	for _, r := range mapping {
		pairs = append(pairs, spellingPair{rename: r, old: wordPattern(r.Old), new: wordPattern(r.New)})
	}

	perFile := make([][]m.Inconsistency, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(int(threads))
	}

	for i, path := range paths {
		group.Go(func() error {
			content, err := a.ReadFile(groupCtx, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			perFile[i] = auditContent(path, content, pairs)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var findings []m.Inconsistency
	for _, f := range perFile {
		findings = append(findings, f...)
	}

	return findings, nil
}

func auditContent(path m.Path, content []byte, pairs []spellingPair) []m.Inconsistency {
	var findings []m.Inconsistency

	for _, p := range pairs {
		oldCount := p.old.Count(content)
		if oldCount == 0 {
			continue
		}

		findings = append(findings, m.Inconsistency{
			Path:     path,
			Rename:   p.rename,
			OldCount: oldCount,
			NewCount: p.new.Count(content),
		})
	}

	return findings
}
