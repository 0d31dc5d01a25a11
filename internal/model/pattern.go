package model

// PatternClass is one syntactic shape in which an identifier occurrence can
// appear in source text.
type PatternClass int

// The closed catalogue of pattern classes, in the order the rename engine
// applies them.
const (
	MemberAccess PatternClass = iota
	ObjectLiteralKey
	DestructuringKey
	SingleQuotedKey
	DoubleQuotedKey
	KeyPresenceCheck
	DocumentedDeclaration
	PlainDeclaration
)

var patternClassNames = map[PatternClass]string{
	MemberAccess:          "member",
	ObjectLiteralKey:      "object-key",
	DestructuringKey:      "destructuring",
	SingleQuotedKey:       "single-quoted",
	DoubleQuotedKey:       "double-quoted",
	KeyPresenceCheck:      "in-check",
	DocumentedDeclaration: "declaration-doc",
	PlainDeclaration:      "declaration",
}

func (c PatternClass) String() string {
	if name, ok := patternClassNames[c]; ok {
		return name
	}

	return "unknown"
}

// ParsePatternClass resolves a class from its String form.
func ParsePatternClass(name string) (PatternClass, bool) {
	for class, n := range patternClassNames {
		if n == name {
			return class, true
		}
	}

	return 0, false
}

// PruneKind identifies what the pruning engine did with a removed symbol.
type PruneKind int

// Prune actions, in the order the pruning engine performs them.
const (
	ImportRemoved PruneKind = iota
	CallCollapsed
	TestDisabled
)

func (k PruneKind) String() string {
	switch k {
	case ImportRemoved:
		return "removed from imports"
	case CallCollapsed:
		return "calls replaced with their argument"
	case TestDisabled:
		return "test blocks commented out"
	}

	return "unknown"
}
