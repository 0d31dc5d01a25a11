package patterns

import m "recase.dev/pkg/recase/internal/model"

// declarationTail is the `?: Type;` part of a property declaration. The type
// may span lines but never contains a semicolon.
const declarationTail = `(\??:\s*[^;]+;)`

// docComment is a `/** ... */` block, single or multi-line. It cannot run
// past its own closing `*/`.
const docComment = `/\*\*(?:[^*]|\*+[^*/])*\*+/`

// buildDocumentedDeclaration matches a property declaration directly preceded
// by a doc comment:
//
//	/**
//	 * Minimum word length
//	 */
//	min_word_length?: number;
//
// The comment and everything after the name are re-emitted verbatim.
func buildDocumentedDeclaration(rename m.Rename) []Rule {
	return []Rule{
		newRule(m.DocumentedDeclaration, rename,
			`(`+docComment+`\s*)`+quote(rename.Old)+declarationTail,
			"${1}"+escapeTemplate(rename.New)+"${2}"),
	}
}

// buildPlainDeclaration matches a property declaration preceded only by
// whitespace.
func buildPlainDeclaration(rename m.Rename) []Rule {
	return []Rule{
		newRule(m.PlainDeclaration, rename,
			`(\s)`+quote(rename.Old)+declarationTail,
			"${1}"+escapeTemplate(rename.New)+"${2}"),
	}
}
