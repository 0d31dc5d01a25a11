// Package patterns holds the catalogue of textual shapes an identifier can
// take in the target sources, one builder per model.PatternClass.
package patterns

import (
	"fmt"
	"regexp"

	m "recase.dev/pkg/recase/internal/model"
)

// Rule is a compiled matcher plus the replacement template for one class and
// one spelling pair.
type Rule struct {
	Class       m.PatternClass
	Rename      m.Rename
	pattern     *regexp.Regexp
	replacement []byte
	// openTail rejects matches followed by '$', which \b does not treat as
	// part of an identifier.
	openTail bool
}

func newRule(class m.PatternClass, rename m.Rename, expr, replacement string) Rule {
	return Rule{
		Class:       class,
		Rename:      rename,
		pattern:     regexp.MustCompile(expr),
		replacement: []byte(replacement),
	}
}

// Apply rewrites every non-overlapping match in src and returns the new text
// together with the number of matches. src is returned unchanged when nothing
// matches.
func (r Rule) Apply(src []byte) ([]byte, int) {
	matches := r.pattern.FindAllSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, 0
	}

	var out []byte

	last, n := 0, 0

	for _, match := range matches {
		if r.openTail && match[1] < len(src) && src[match[1]] == '$' {
			continue
		}

		out = append(out, src[last:match[0]]...)
		out = r.pattern.Expand(out, r.replacement, src, match)
		last = match[1]
		n++
	}

	if n == 0 {
		return src, 0
	}

	return append(out, src[last:]...), n
}

// Pattern exposes the regular expression source for debug logging.
func (r Rule) Pattern() string {
	return r.pattern.String()
}

// Builder produces the rules for one class given a spelling pair.
type Builder func(rename m.Rename) []Rule

var builders = map[m.PatternClass]Builder{
	m.MemberAccess:          buildMemberAccess,
	m.ObjectLiteralKey:      buildObjectLiteralKey,
	m.DestructuringKey:      buildDestructuringKey,
	m.SingleQuotedKey:       buildSingleQuotedKey,
	m.DoubleQuotedKey:       buildDoubleQuotedKey,
	m.KeyPresenceCheck:      buildKeyPresenceCheck,
	m.DocumentedDeclaration: buildDocumentedDeclaration,
	m.PlainDeclaration:      buildPlainDeclaration,
}

// Build returns the rules for class instantiated with rename.
func Build(class m.PatternClass, rename m.Rename) ([]Rule, error) {
	builder, ok := builders[class]
	if !ok {
		return nil, fmt.Errorf("unsupported pattern class: %d", class)
	}

	return builder(rename), nil
}

// quote escapes a spelling for use inside a pattern. Identifiers may contain
// '$', which is a metacharacter.
func quote(spelling string) string {
	return regexp.QuoteMeta(spelling)
}

// escapeTemplate protects a spelling used in a replacement template, where '$'
// would otherwise start a group reference.
func escapeTemplate(spelling string) string {
	out := make([]byte, 0, len(spelling))
	for i := 0; i < len(spelling); i++ {
		if spelling[i] == '$' {
			out = append(out, '$')
		}

		out = append(out, spelling[i])
	}

	return string(out)
}

// trailingBoundary asserts a word boundary after spelling when it ends in a
// word character. Rules built with it also set openTail.
func trailingBoundary(spelling string) string {
	if spelling == "" {
		return ""
	}

	switch c := spelling[len(spelling)-1]; {
	case c == '_', '0' <= c && c <= '9', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return `\b`
	}

	return ""
}
