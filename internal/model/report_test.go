package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSummary_Count(t *testing.T) {
	s := FileSummary{
		Entries: []EntryCount{{Total: 3}, {Total: 0}},
		Actions: []PruneAction{{Count: 2}},
		Rules:   []RuleCount{{Count: 1}},
	}

	assert.Equal(t, 6, s.Count())
	assert.Equal(t, 0, FileSummary{}.Count())
}

func TestRunSummary_Add(t *testing.T) {
	var summary RunSummary

	summary = summary.Add(FileSummary{Path: "a.ts", Changed: true, Written: true, Entries: []EntryCount{{Total: 2}}})
	summary = summary.Add(FileSummary{Path: "b.ts"})
	summary = summary.Add(FileSummary{Path: "c.ts", Missing: true})

	assert.Len(t, summary.Files, 3)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, 1, summary.Missing)
	assert.Equal(t, []FileSummary{summary.Files[0]}, summary.Changed())
}

func TestRunSummary_AddLeavesReceiverUntouched(t *testing.T) {
	base := RunSummary{DryRun: true}
	next := base.Add(FileSummary{Path: "a.ts", Entries: []EntryCount{{Total: 1}}})

	assert.Empty(t, base.Files)
	assert.Equal(t, 0, base.Total)
	assert.Equal(t, 1, next.Total)
	assert.True(t, next.DryRun)
}

func TestPruneAction_Description(t *testing.T) {
	a := PruneAction{Symbol: "toUnifiedConfig", Kind: CallCollapsed, Count: 2}
	assert.Equal(t, "toUnifiedConfig: calls replaced with their argument", a.Description())
}

func TestInconsistency_Mixed(t *testing.T) {
	assert.True(t, Inconsistency{OldCount: 1, NewCount: 1}.Mixed())
	assert.False(t, Inconsistency{OldCount: 1}.Mixed())
}

func TestPatternClass_RoundTrip(t *testing.T) {
	for class := MemberAccess; class <= PlainDeclaration; class++ {
		got, ok := ParsePatternClass(class.String())
		assert.True(t, ok, class.String())
		assert.Equal(t, class, got)
	}

	_, ok := ParsePatternClass("nope")
	assert.False(t, ok)
	assert.Equal(t, "unknown", PatternClass(99).String())
	assert.Equal(t, "unknown", PruneKind(99).String())
}
