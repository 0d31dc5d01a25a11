package model

// EntryCount records how many occurrences of one rename were rewritten, split
// by pattern class.
type EntryCount struct {
	Rename  Rename
	ByClass map[PatternClass]int
	Total   int
}

// PruneAction records one kind of rewrite performed for a removed symbol.
type PruneAction struct {
	Symbol string
	Kind   PruneKind
	Count  int
}

// Description is the human readable form used in console reports.
func (a PruneAction) Description() string {
	return a.Symbol + ": " + a.Kind.String()
}

// Residual is a whole-word occurrence of a spelling that no pattern rewrote.
type Residual struct {
	Spelling string
	Count    int
}

// FileSummary is the outcome of processing a single file.
type FileSummary struct {
	Path      Path
	Missing   bool
	Changed   bool
	Written   bool
	Entries   []EntryCount
	Actions   []PruneAction
	Rules     []RuleCount
	Residuals []Residual
	Diff      string
}

// RuleCount records how often a tidy rule fired.
type RuleCount struct {
	Rule  string
	Count int
}

// Count returns the number of substitutions or removals applied to the file.
func (s FileSummary) Count() int {
	total := 0
	for _, e := range s.Entries {
		total += e.Total
	}

	for _, a := range s.Actions {
		total += a.Count
	}

	for _, r := range s.Rules {
		total += r.Count
	}

	return total
}

// RunSummary aggregates the file summaries of one run.
type RunSummary struct {
	Files   []FileSummary
	DryRun  bool
	Total   int
	Written int
	Missing int
}

// Add folds a processed file into the run totals and returns the new summary.
func (r RunSummary) Add(file FileSummary) RunSummary {
	r.Files = append(r.Files, file)
	r.Total += file.Count()

	if file.Written {
		r.Written++
	}

	if file.Missing {
		r.Missing++
	}

	return r
}

// Changed returns the summaries of files whose content changed.
func (r RunSummary) Changed() []FileSummary {
	changed := make([]FileSummary, 0, len(r.Files))

	for _, f := range r.Files {
		if f.Changed {
			changed = append(changed, f)
		}
	}

	return changed
}

// Inconsistency is a file where an old spelling is still present, possibly
// next to its new spelling.
type Inconsistency struct {
	Path     Path
	Rename   Rename
	OldCount int
	NewCount int
}

// Mixed reports whether both spellings of the same property appear.
func (i Inconsistency) Mixed() bool {
	return i.OldCount > 0 && i.NewCount > 0
}
