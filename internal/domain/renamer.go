package domain

import (
	"fmt"
	"log/slog"
	"regexp"

	"recase.dev/pkg/recase/internal/domain/patterns"
	m "recase.dev/pkg/recase/internal/model"
)

// Renamer rewrites identifier spellings according to a rename mapping.
type Renamer interface {
	Rename(content []byte) RenameResult
	Mapping() m.Mapping
}

// RenameResult is the rewritten text together with per-entry counts and the
// whole-word occurrences of old spellings that no class recognised.
type RenameResult struct {
	Content   []byte
	Entries   []m.EntryCount
	Residuals []m.Residual
}

// Total returns the number of substitutions across all entries.
func (r RenameResult) Total() int {
	total := 0
	for _, e := range r.Entries {
		total += e.Total
	}

	return total
}

type compiledEntry struct {
	rename   m.Rename
	rules    []patterns.Rule
	residual word
}

type renamer struct {
	mapping m.Mapping
	entries []compiledEntry
}

// NewRenamer validates mapping and compiles the rules for the selected
// classes once, so every file of a run reuses them. With no classes the whole
// catalogue is used.
func NewRenamer(mapping m.Mapping, classes ...m.PatternClass) (Renamer, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	ordered := patterns.Ordered(classes)
	entries := make([]compiledEntry, 0, len(mapping))

	for _, rename := range mapping {
		entry := compiledEntry{
			rename:   rename,
			residual: wordPattern(rename.Old),
		}

		for _, class := range ordered {
			rules, err := patterns.Build(class, rename)
			if err != nil {
				return nil, fmt.Errorf("compile %s: %w", rename, err)
			}

			for _, rule := range rules {
				slog.Debug("Compiled rename rule", "rename", rename.String(), "class", rule.Class.String(), "pattern", rule.Pattern())
			}

			entry.rules = append(entry.rules, rules...)
		}

		entries = append(entries, entry)
	}

	return &renamer{mapping: mapping, entries: entries}, nil
}

// Rename applies every entry in mapping order and every class in catalogue
// order. Each rule scans the output of the previous one.
func (r *renamer) Rename(content []byte) RenameResult {
	result := RenameResult{Content: content}

	for _, entry := range r.entries {
		count := m.EntryCount{
			Rename:  entry.rename,
			ByClass: make(map[m.PatternClass]int),
		}

		for _, rule := range entry.rules {
			var n int

			result.Content, n = rule.Apply(result.Content)
			if n == 0 {
				continue
			}

			count.ByClass[rule.Class] += n
			count.Total += n
		}

		result.Entries = append(result.Entries, count)
	}

	for _, entry := range r.entries {
		if n := entry.residual.Count(result.Content); n > 0 {
			result.Residuals = append(result.Residuals, m.Residual{Spelling: entry.rename.Old, Count: n})
		}
	}

	return result
}

func (r *renamer) Mapping() m.Mapping {
	return r.mapping
}

// word matches an identifier spelling as a whole word. '$' is an identifier
// character in the target language, so `old$x` and `$old` do not match old.
type word struct {
	pattern *regexp.Regexp
}

func wordPattern(spelling string) word {
	return word{pattern: regexp.MustCompile(regexp.QuoteMeta(spelling))}
}

// FindAllIndex returns the whole-word matches in src.
func (w word) FindAllIndex(src []byte) [][]int {
	var found [][]int

	for _, match := range w.pattern.FindAllIndex(src, -1) {
		if match[0] > 0 && isIdentByte(src[match[0]-1]) {
			continue
		}

		if match[1] < len(src) && isIdentByte(src[match[1]]) {
			continue
		}

		found = append(found, match)
	}

	return found
}

// Count returns the number of whole-word matches in src.
func (w word) Count(src []byte) int {
	return len(w.FindAllIndex(src))
}

// MatchString reports whether s holds the spelling as a whole word.
func (w word) MatchString(s string) bool {
	return w.Count([]byte(s)) > 0
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
