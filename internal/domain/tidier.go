package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "recase.dev/pkg/recase/internal/model"
)

// Tidy rule names.
const (
	RuleExampleBlocks = "example-blocks"
	RuleMetaTags      = "meta-tags"
	RuleDropPrefixes  = "drop-prefixes"
	RuleEmptyDocLines = "empty-doc-lines"
	RuleBlankLines    = "blank-lines"
)

// DefaultTidyRules is the order tidy rules run in.
var DefaultTidyRules = []string{
	RuleExampleBlocks,
	RuleMetaTags,
	RuleDropPrefixes,
	RuleEmptyDocLines,
	RuleBlankLines,
}

var (
	docTagLine      = regexp.MustCompile(`^\s*\*\s*@\w+`)
	docExampleLine  = regexp.MustCompile(`^\s*\*\s*@example\b`)
	docMetaTagLine  = regexp.MustCompile(`^\s*\*\s*@(?:since|version|author)\b`)
	docCloseLine    = regexp.MustCompile(`^\s*\*/`)
	docEmptyLine    = regexp.MustCompile(`^\s*\*\s*$`)
	docFenceLine    = regexp.MustCompile("^\\s*\\*?\\s*```")
	blankLineRun    = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)
	commentLeadExpr = `^\s*(?:\*|//)\s*`
)

// TidyOptions configure a Tidier.
type TidyOptions struct {
	Rules        []string
	DropPrefixes []string
}

// Tidier trims documentation comments that carry no information.
type Tidier interface {
	Tidy(content []byte) TidyResult
}

// TidyResult is the cleaned text with the number of edits per rule.
type TidyResult struct {
	Content []byte
	Rules   []m.RuleCount
}

type tidier struct {
	rules []string
	drop  []*regexp.Regexp
}

// NewTidier validates the rule names. With no rules every rule runs.
func NewTidier(opts TidyOptions) (Tidier, error) {
	rules := opts.Rules
	if len(rules) == 0 {
		rules = DefaultTidyRules
	}

	known := make(map[string]bool, len(DefaultTidyRules))
	for _, r := range DefaultTidyRules {
		known[r] = true
	}

	for _, r := range rules {
		if !known[r] {
			return nil, fmt.Errorf("unknown tidy rule %q", r)
		}
	}

	drop := make([]*regexp.Regexp, 0, len(opts.DropPrefixes))
	for _, prefix := range opts.DropPrefixes {
		if strings.TrimSpace(prefix) == "" {
			continue
		}

		drop = append(drop, regexp.MustCompile(commentLeadExpr+regexp.QuoteMeta(prefix)))
	}

	return &tidier{rules: rules, drop: drop}, nil
}

func (t *tidier) Tidy(content []byte) TidyResult {
	result := TidyResult{Content: content}

	for _, rule := range t.rules {
		var n int

		switch rule {
		case RuleExampleBlocks:
			result.Content, n = dropLines(result.Content, exampleBlockFilter())
		case RuleMetaTags:
			result.Content, n = dropLines(result.Content, docMetaTagLine.MatchString)
		case RuleDropPrefixes:
			result.Content, n = dropLines(result.Content, t.matchesDropPrefix)
		case RuleEmptyDocLines:
			result.Content, n = dropLines(result.Content, docEmptyLine.MatchString)
		case RuleBlankLines:
			n = len(blankLineRun.FindAllIndex(result.Content, -1))
			if n > 0 {
				result.Content = blankLineRun.ReplaceAll(result.Content, []byte("\n\n"))
			}
		}

		if n > 0 {
			result.Rules = append(result.Rules, m.RuleCount{Rule: rule, Count: n})
		}
	}

	return result
}

func (t *tidier) matchesDropPrefix(line string) bool {
	for _, re := range t.drop {
		if re.MatchString(line) {
			return true
		}
	}

	return false
}

// exampleBlockFilter drops an `@example` tag line and every doc line after it
// up to the next tag or the end of the comment. Lines inside a ``` fence are
// dropped even when they look like tags.
func exampleBlockFilter() func(string) bool {
	inExample, inFence := false, false

	return func(line string) bool {
		if docExampleLine.MatchString(line) {
			inExample, inFence = true, false
			return true
		}

		if !inExample {
			return false
		}

		if docFenceLine.MatchString(line) {
			inFence = !inFence
			return true
		}

		if !inFence && (docTagLine.MatchString(line) || docCloseLine.MatchString(line)) {
			inExample = false
			return false
		}

		return true
	}
}

// dropLines removes the lines for which drop returns true and reports how
// many were removed. The input is returned as is when nothing is dropped.
func dropLines(src []byte, drop func(string) bool) ([]byte, int) {
	lines := strings.SplitAfter(string(src), "\n")
	kept := make([]string, 0, len(lines))
	dropped := 0

	for _, line := range lines {
		if line != "" && drop(strings.TrimRight(line, "\r\n")) {
			dropped++
			continue
		}

		kept = append(kept, line)
	}

	if dropped == 0 {
		return src, 0
	}

	return []byte(strings.Join(kept, "")), dropped
}
