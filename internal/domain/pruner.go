package domain

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	m "recase.dev/pkg/recase/internal/model"
)

// DefaultRegistrars are the call names that register a test block.
var DefaultRegistrars = []string{"Deno.test"}

// DefaultAnnotation is appended to test blocks that were commented out.
// "{symbol}" is replaced with the removed symbol.
const DefaultAnnotation = "disabled: {symbol} was removed"

// importListPattern matches a named import or re-export list with its module
// specifier. Group 1 is the brace contents.
var importListPattern = regexp.MustCompile(
	`(?m)^[ \t]*(?:import|export)(?:\s+type)?\s*\{([^{}]*)\}\s*from\s*(?:"[^"\n]*"|'[^'\n]*')[ \t]*;?[ \t]*(?:\r?\n)?`,
)

var (
	doubledSeparator = regexp.MustCompile(`,(\s*),`)
	leadingSeparator = regexp.MustCompile(`^(\s*),`)
	closingSeparator = regexp.MustCompile(`,(\s*)$`)
)

// PruneOptions configure a Pruner.
type PruneOptions struct {
	Symbols    []string
	Registrars []string
	Annotation string
}

// Pruner removes or neutralises references to deleted symbols.
type Pruner interface {
	Prune(content []byte) PruneResult
	Symbols() []string
}

// PruneResult is the rewritten text with one action per symbol and kind that
// actually fired, plus references left in place.
type PruneResult struct {
	Content   []byte
	Actions   []m.PruneAction
	Residuals []m.Residual
}

type compiledSymbol struct {
	name       string
	call       *regexp.Regexp
	word       word
	registrars []*regexp.Regexp
}

type pruner struct {
	symbols    []compiledSymbol
	annotation string
}

// NewPruner compiles the patterns for every removed symbol.
func NewPruner(opts PruneOptions) (Pruner, error) {
	if len(opts.Symbols) == 0 {
		return nil, fmt.Errorf("%w: no removed symbols configured", ErrNoTargets)
	}

	registrars := opts.Registrars
	if len(registrars) == 0 {
		registrars = DefaultRegistrars
	}

	annotation := opts.Annotation
	if strings.TrimSpace(annotation) == "" {
		annotation = DefaultAnnotation
	}

	compiledRegistrars := make([]*regexp.Regexp, 0, len(registrars))
	for _, reg := range registrars {
		compiledRegistrars = append(compiledRegistrars,
			regexp.MustCompile(`(?m)^[ \t]*`+regexp.QuoteMeta(reg)+`\s*\(`))
	}

	symbols := make([]compiledSymbol, 0, len(opts.Symbols))

	for _, sym := range opts.Symbols {
		if !m.IsIdentifier(sym) {
			return nil, fmt.Errorf("%w: removed symbol %q is not an identifier", m.ErrInvalidMapping, sym)
		}

		symbols = append(symbols, compiledSymbol{
			name:       sym,
			call:       regexp.MustCompile(`\b` + regexp.QuoteMeta(sym) + `\s*\(\s*([^(),]*[^(),\s])\s*\)`),
			word:       wordPattern(sym),
			registrars: compiledRegistrars,
		})
	}

	return &pruner{symbols: symbols, annotation: annotation}, nil
}

func (p *pruner) Symbols() []string {
	names := make([]string, 0, len(p.symbols))
	for _, s := range p.symbols {
		names = append(names, s.name)
	}

	return names
}

// Prune processes symbols in order; for each one it edits import lists, then
// collapses call sites, then comments out test blocks.
func (p *pruner) Prune(content []byte) PruneResult {
	result := PruneResult{Content: content}

	for _, sym := range p.symbols {
		var n int

		result.Content, n = removeFromImports(result.Content, sym.name)
		result.addAction(sym.name, m.ImportRemoved, n)

		result.Content, n = collapseCalls(result.Content, sym.call)
		result.addAction(sym.name, m.CallCollapsed, n)

		annotation := strings.ReplaceAll(p.annotation, "{symbol}", sym.name)
		result.Content, n = disableTests(result.Content, sym, annotation)
		result.addAction(sym.name, m.TestDisabled, n)
	}

	for _, sym := range p.symbols {
		if n := countOutsideComments(result.Content, sym.word); n > 0 {
			result.Residuals = append(result.Residuals, m.Residual{Spelling: sym.name, Count: n})
		}
	}

	return result
}

func (r *PruneResult) addAction(symbol string, kind m.PruneKind, count int) {
	if count == 0 {
		return
	}

	r.Actions = append(r.Actions, m.PruneAction{Symbol: symbol, Kind: kind, Count: count})
}

// removeFromImports drops symbol from every import/export list. A list left
// without entries drops its whole statement.
func removeFromImports(src []byte, symbol string) ([]byte, int) {
	matches := importListPattern.FindAllSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, 0
	}

	var out bytes.Buffer

	last, removed := 0, 0

	for _, match := range matches {
		list := string(src[match[2]:match[3]])

		edited, n := removeImportEntry(list, symbol)
		if n == 0 {
			continue
		}

		removed += n

		out.Write(src[last:match[0]])

		if strings.TrimSpace(strings.ReplaceAll(edited, ",", "")) != "" {
			out.Write(src[match[0]:match[2]])
			out.WriteString(edited)
			out.Write(src[match[3]:match[1]])
		}

		last = match[1]
	}

	if removed == 0 {
		return src, 0
	}

	out.Write(src[last:])

	return out.Bytes(), removed
}

// removeImportEntry removes the entries naming symbol from a comma separated
// list, keeping the whitespace that framed the list.
func removeImportEntry(list, symbol string) (string, int) {
	items := strings.Split(list, ",")
	kept := make([]string, 0, len(items))
	removed := 0

	for _, item := range items {
		if importedName(item) == symbol {
			removed++
			continue
		}

		kept = append(kept, item)
	}

	if removed == 0 {
		return list, 0
	}

	if len(kept) > 0 {
		kept[0] = leadingSpace(items[0]) + strings.TrimLeft(kept[0], " \t\r\n")
		end := len(kept) - 1
		kept[end] = strings.TrimRight(kept[end], " \t\r\n") + trailingSpace(items[len(items)-1])
	}

	return collapseSeparators(strings.Join(kept, ",")), removed
}

// collapseSeparators repairs a list after an entry was cut out of it: doubled
// commas, a comma right after the opening brace and one right before the
// closing brace.
func collapseSeparators(list string) string {
	list = doubledSeparator.ReplaceAllString(list, ",$1")
	list = leadingSeparator.ReplaceAllString(list, "$1")

	return closingSeparator.ReplaceAllString(list, "$1")
}

// importedName returns the exported name an import entry refers to:
// `type Foo` and `Foo as Bar` both yield Foo.
func importedName(item string) string {
	name := strings.TrimSpace(item)
	name = strings.TrimSpace(strings.TrimPrefix(name, "type "))

	if i := strings.IndexAny(name, " \t\r\n"); i >= 0 {
		name = name[:i]
	}

	return name
}

func leadingSpace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t\r\n"))]
}

func trailingSpace(s string) string {
	return s[len(strings.TrimRight(s, " \t\r\n")):]
}

// collapseCalls replaces `symbol(arg)` with `arg`. Member calls, function
// declarations, method definitions and calls inside string literals or
// comments are left alone, as are calls whose argument holds parentheses or
// commas (call does not match those at all).
func collapseCalls(src []byte, call *regexp.Regexp) ([]byte, int) {
	matches := call.FindAllSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, 0
	}

	spans := literalSpans(src)

	var out bytes.Buffer

	last, collapsed := 0, 0

	for _, match := range matches {
		if !isCallSite(src, spans, match[0], match[1]) {
			continue
		}

		out.Write(src[last:match[0]])
		out.Write(src[match[2]:match[3]])

		last = match[1]
		collapsed++
	}

	if collapsed == 0 {
		return src, 0
	}

	out.Write(src[last:])

	return out.Bytes(), collapsed
}

func isCallSite(src []byte, spans [][2]int, start, end int) bool {
	if inSpan(spans, start) || (start > 0 && src[start-1] == '$') {
		return false
	}

	before := bytes.TrimRight(src[:start], " \t")
	if bytes.HasSuffix(before, []byte(".")) || bytes.HasSuffix(before, []byte("function")) {
		return false
	}

	after := skipSpace(src, end)

	return after >= len(src) || src[after] != '{'
}

// disableTests comments out every registered test whose title mentions the
// symbol. Each line of the block gets a `// ` prefix after its indentation and
// the last line carries the annotation.
func disableTests(src []byte, sym compiledSymbol, annotation string) ([]byte, int) {
	disabled := 0

	for _, registrar := range sym.registrars {
		var n int

		src, n = disableRegistrar(src, registrar, sym.word, annotation)
		disabled += n
	}

	return src, disabled
}

func disableRegistrar(src []byte, registrar *regexp.Regexp, symbol word, annotation string) ([]byte, int) {
	matches := registrar.FindAllIndex(src, -1)
	if len(matches) == 0 {
		return src, 0
	}

	var out bytes.Buffer

	last, disabled := 0, 0

	for _, match := range matches {
		if match[0] < last {
			continue
		}

		open := match[1] - 1

		title, ok := readTitle(src, open)
		if !ok || !symbol.MatchString(title) {
			continue
		}

		closing := matchParen(src, open)
		if closing < 0 {
			continue
		}

		end := closing + 1
		if end < len(src) && src[end] == ';' {
			end++
		}

		out.Write(src[last:match[0]])
		out.WriteString(commentOut(string(src[match[0]:end]), annotation))

		last = end
		disabled++

		// Code after the block on its closing line goes on a new line.
		if rest := skipBlanks(src, end); rest < len(src) && src[rest] != '\n' && src[rest] != '\r' &&
			!bytes.HasPrefix(src[rest:], []byte("//")) {
			out.WriteByte('\n')
			out.Write(leadingBlanks(src[match[0]:]))

			last = rest
		}
	}

	if disabled == 0 {
		return src, 0
	}

	out.Write(src[last:])

	return out.Bytes(), disabled
}

func commentOut(block, annotation string) string {
	lines := strings.Split(block, "\n")

	for i, line := range lines {
		body := strings.TrimLeft(line, " \t")
		if strings.TrimSpace(body) == "" {
			continue
		}

		lines[i] = line[:len(line)-len(body)] + "// " + body
	}

	return strings.Join(lines, "\n") + " // " + annotation
}

// countOutsideComments counts matches of symbol that are not in a line comment.
func countOutsideComments(src []byte, symbol word) int {
	count := 0

	for _, match := range symbol.FindAllIndex(src) {
		if !inLineComment(src, match[0]) {
			count++
		}
	}

	return count
}
