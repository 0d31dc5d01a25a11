package patterns

import m "recase.dev/pkg/recase/internal/model"

// buildMemberAccess matches `.old` ending at an identifier boundary, so
// `config.min_word_length` is rewritten but `config.min_word_length_max` and
// `config.min_word_length$x` are not.
func buildMemberAccess(rename m.Rename) []Rule {
	rule := newRule(m.MemberAccess, rename,
		`\.`+quote(rename.Old)+trailingBoundary(rename.Old),
		"."+escapeTemplate(rename.New))
	rule.openTail = true

	return []Rule{rule}
}

// buildKeyPresenceCheck matches `'old' in obj` and `"old" in obj`.
func buildKeyPresenceCheck(rename m.Rename) []Rule {
	return []Rule{
		newRule(m.KeyPresenceCheck, rename,
			`'`+quote(rename.Old)+`'(\s+in\s)`,
			"'"+escapeTemplate(rename.New)+"'${1}"),
		newRule(m.KeyPresenceCheck, rename,
			`"`+quote(rename.Old)+`"(\s+in\s)`,
			`"`+escapeTemplate(rename.New)+`"${1}`),
	}
}
