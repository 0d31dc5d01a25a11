package patterns

import m "recase.dev/pkg/recase/internal/model"

// buildObjectLiteralKey matches a key right after an opening brace:
// `{ old: value }`. Whitespace around the key is kept as written.
func buildObjectLiteralKey(rename m.Rename) []Rule {
	return []Rule{
		newRule(m.ObjectLiteralKey, rename,
			`\{(\s*)`+quote(rename.Old)+`(\s*):`,
			"{${1}"+escapeTemplate(rename.New)+"${2}:"),
	}
}

// buildDestructuringKey matches a single-name destructuring pattern `{ old }`.
func buildDestructuringKey(rename m.Rename) []Rule {
	return []Rule{
		newRule(m.DestructuringKey, rename,
			`\{(\s*)`+quote(rename.Old)+`(\s*)\}`,
			"{${1}"+escapeTemplate(rename.New)+"${2}}"),
	}
}

func buildSingleQuotedKey(rename m.Rename) []Rule {
	return []Rule{
		newRule(m.SingleQuotedKey, rename,
			`'`+quote(rename.Old)+`':`,
			"'"+escapeTemplate(rename.New)+"':"),
	}
}

func buildDoubleQuotedKey(rename m.Rename) []Rule {
	return []Rule{
		newRule(m.DoubleQuotedKey, rename,
			`"`+quote(rename.Old)+`":`,
			`"`+escapeTemplate(rename.New)+`":`),
	}
}
