package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"recase.dev/pkg/recase/internal/adapter"
	m "recase.dev/pkg/recase/internal/model"
)

// recursiveSuffix marks a directory entry that should be walked recursively,
// as in "src/...".
const recursiveSuffix = "/..."

// Selector resolves target sets into sorted, de-duplicated file lists.
type Selector interface {
	Select(ctx context.Context, set m.TargetSet) (m.Selection, error)
}

type selector struct {
	adapter.SourceFSAdapter
}

// NewSelector creates a Selector backed by fsAdapter.
func NewSelector(fsAdapter adapter.SourceFSAdapter) Selector {
	return &selector{SourceFSAdapter: fsAdapter}
}

// Select expands every path entry of set. Entries may be a file, a directory
// (its direct children), a directory followed by "/..." (recursive) or a glob.
// Explicit files that do not exist are reported as missing; explicit files
// bypass the suffix filter but not the exclude patterns.
func (s *selector) Select(ctx context.Context, set m.TargetSet) (m.Selection, error) {
	selection := m.Selection{Name: set.Name}

	excludes, err := compileExcludes(set.Exclude)
	if err != nil {
		return selection, err
	}

	seen := make(map[m.Path]struct{})
	add := func(path m.Path, explicit bool) {
		if !explicit && !hasSuffix(path, set.Suffixes) {
			return
		}

		if excluded(path, excludes) {
			return
		}

		path = m.Path(filepath.Clean(string(path)))
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		selection.Files = append(selection.Files, path)
	}

	for _, entry := range set.Paths {
		if err := ctx.Err(); err != nil {
			return selection, err
		}

		raw := string(entry)

		switch {
		case isGlob(raw):
			matches, err := s.Glob(ctx, raw)
			if err != nil {
				return selection, err
			}

			for _, match := range matches {
				add(match, false)
			}
		case raw == "..." || strings.HasSuffix(raw, recursiveSuffix):
			root := strings.TrimSuffix(strings.TrimSuffix(raw, "..."), "/")
			if root == "" {
				root = "."
			}

			if err := s.walkFiles(ctx, m.Path(root), true, add); err != nil {
				return selection, err
			}
		default:
			info, err := s.FileInfo(ctx, entry)
			if errors.Is(err, fs.ErrNotExist) {
				selection.Missing = append(selection.Missing, entry)
				continue
			}

			if err != nil {
				return selection, fmt.Errorf("stat %s: %w", entry, err)
			}

			if info.IsDir() {
				if err := s.walkFiles(ctx, entry, false, add); err != nil {
					return selection, err
				}

				continue
			}

			add(entry, true)
		}
	}

	sort.Slice(selection.Files, func(i, j int) bool { return selection.Files[i] < selection.Files[j] })

	return selection, nil
}

func (s *selector) walkFiles(ctx context.Context, root m.Path, recursive bool, add func(m.Path, bool)) error {
	err := s.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			add(m.Path(path), false)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	return nil
}

// Merge combines selections into one sorted file list without duplicates.
func Merge(selections []m.Selection) []m.Path {
	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, sel := range selections {
		for _, f := range sel.Files {
			if _, ok := seen[f]; ok {
				continue
			}

			seen[f] = struct{}{}
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

func hasSuffix(path m.Path, suffixes []string) bool {
	if len(suffixes) == 0 {
		return true
	}

	for _, suffix := range suffixes {
		if strings.HasSuffix(string(path), suffix) {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func excluded(path m.Path, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(string(path)) {
			return true
		}
	}

	return false
}
