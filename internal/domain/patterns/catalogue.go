package patterns

import (
	"fmt"
	"strings"

	m "recase.dev/pkg/recase/internal/model"
)

// Catalogue is the fixed order in which the rename engine applies classes:
// member access, the brace forms, the quoted forms, then declarations.
var Catalogue = []m.PatternClass{
	m.MemberAccess,
	m.ObjectLiteralKey,
	m.DestructuringKey,
	m.SingleQuotedKey,
	m.DoubleQuotedKey,
	m.KeyPresenceCheck,
	m.DocumentedDeclaration,
	m.PlainDeclaration,
}

// Profiles are the class subsets used by the restricted commands.
var Profiles = map[string][]m.PatternClass{
	"rename": Catalogue,
	"props":  {m.DocumentedDeclaration, m.PlainDeclaration},
	"usage":  {m.MemberAccess, m.KeyPresenceCheck},
}

// Ordered returns classes sorted into catalogue order with duplicates
// removed. An empty input selects the whole catalogue.
func Ordered(classes []m.PatternClass) []m.PatternClass {
	if len(classes) == 0 {
		return Catalogue
	}

	selected := make(map[m.PatternClass]bool, len(classes))
	for _, c := range classes {
		selected[c] = true
	}

	ordered := make([]m.PatternClass, 0, len(selected))

	for _, c := range Catalogue {
		if selected[c] {
			ordered = append(ordered, c)
		}
	}

	return ordered
}

// ParseClasses resolves class names such as "member" or "declaration".
func ParseClasses(names []string) ([]m.PatternClass, error) {
	classes := make([]m.PatternClass, 0, len(names))

	for _, name := range names {
		class, ok := m.ParsePatternClass(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown pattern class %q", name)
		}

		classes = append(classes, class)
	}

	return classes, nil
}
