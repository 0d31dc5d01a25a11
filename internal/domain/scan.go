package domain

import (
	"bytes"
	"sort"
)

// matchParen returns the index of the ')' closing the '(' at open, skipping
// string literals and comments. It returns -1 when the parentheses do not
// balance before the end of src.
func matchParen(src []byte, open int) int {
	depth := 0

	for i := open; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		case '"', '\'', '`':
			end := skipString(src, i)
			if end < 0 {
				return -1
			}

			i = end
		case '/':
			end := skipComment(src, i)
			if end < 0 {
				return -1
			}

			i = end
		}
	}

	return -1
}

// skipString returns the index of the quote closing the literal that starts at
// start. Single and double quoted literals may not span lines.
func skipString(src []byte, start int) int {
	quote := src[start]

	for i := start + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case quote:
			return i
		case '\n':
			if quote != '`' {
				return -1
			}
		}
	}

	return -1
}

// skipComment returns the last index of the comment starting at start, or
// start itself when the slash does not open a comment.
func skipComment(src []byte, start int) int {
	if start+1 >= len(src) {
		return start
	}

	switch src[start+1] {
	case '/':
		if nl := bytes.IndexByte(src[start:], '\n'); nl >= 0 {
			return start + nl
		}

		return len(src) - 1
	case '*':
		if end := bytes.Index(src[start+2:], []byte("*/")); end >= 0 {
			return start + 2 + end + 1
		}

		return -1
	}

	return start
}

// readTitle returns the first string literal argument of the call whose '('
// is at open. Object-style registrations `({ name: "..." })` are understood.
func readTitle(src []byte, open int) (string, bool) {
	i := skipSpace(src, open+1)

	if i < len(src) && src[i] == '{' {
		i = skipSpace(src, i+1)
		if !bytes.HasPrefix(src[i:], []byte("name")) {
			return "", false
		}

		i = skipSpace(src, i+len("name"))
		if i >= len(src) || src[i] != ':' {
			return "", false
		}

		i = skipSpace(src, i+1)
	}

	if i >= len(src) || (src[i] != '"' && src[i] != '\'' && src[i] != '`') {
		return "", false
	}

	end := skipString(src, i)
	if end < 0 {
		return "", false
	}

	return string(src[i+1 : end]), true
}

func skipSpace(src []byte, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n' || src[i] == '\r') {
		i++
	}

	return i
}

// lineStart returns the index of the first byte of the line containing pos.
func lineStart(src []byte, pos int) int {
	return bytes.LastIndexByte(src[:pos], '\n') + 1
}

// inLineComment reports whether pos sits after a `//` on its own line.
func inLineComment(src []byte, pos int) bool {
	return bytes.Contains(src[lineStart(src, pos):pos], []byte("//"))
}

// literalSpans returns the inclusive byte ranges of string literals and
// comments in src, in order. A quote that is never closed is not a literal.
func literalSpans(src []byte) [][2]int {
	var spans [][2]int

	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '"', '\'', '`':
			end := skipString(src, i)
			if end < 0 {
				continue
			}

			spans = append(spans, [2]int{i, end})
			i = end
		case '/':
			end := skipComment(src, i)
			if end == i {
				continue
			}

			if end < 0 {
				end = len(src) - 1
			}

			spans = append(spans, [2]int{i, end})
			i = end
		}
	}

	return spans
}

// inSpan reports whether pos falls inside one of spans.
func inSpan(spans [][2]int, pos int) bool {
	k := sort.Search(len(spans), func(k int) bool { return spans[k][1] >= pos })

	return k < len(spans) && spans[k][0] <= pos
}

func skipBlanks(src []byte, i int) int {
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}

	return i
}

func leadingBlanks(line []byte) []byte {
	return line[:skipBlanks(line, 0)]
}
