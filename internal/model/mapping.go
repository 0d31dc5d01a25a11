package model

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidMapping is returned when a rename entry is not a pair of identifiers.
	ErrInvalidMapping = errors.New("invalid rename mapping")
	// ErrDuplicateKey is returned when an old spelling appears more than once.
	ErrDuplicateKey = errors.New("duplicate old spelling in mapping")
	// ErrChainedMapping is returned when a new spelling is also mapped as an old one.
	ErrChainedMapping = errors.New("chained rename in mapping")
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether s is a valid identifier spelling.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Rename is one old -> new identifier pair.
type Rename struct {
	Old string
	New string
}

func (r Rename) String() string {
	return r.Old + " → " + r.New
}

// Mapping is the ordered list of renames applied in one run. Order is part of
// the contract: earlier entries rewrite the text later entries scan.
type Mapping []Rename

// Validate checks that every entry is an identifier pair, old spellings are
// unique and no new spelling is itself renamed again.
func (mp Mapping) Validate() error {
	olds := make(map[string]struct{}, len(mp))

	for _, r := range mp {
		if !IsIdentifier(r.Old) || !IsIdentifier(r.New) {
			return fmt.Errorf("%w: %q -> %q", ErrInvalidMapping, r.Old, r.New)
		}

		if r.Old == r.New {
			return fmt.Errorf("%w: %q maps to itself", ErrInvalidMapping, r.Old)
		}

		if _, ok := olds[r.Old]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, r.Old)
		}

		olds[r.Old] = struct{}{}
	}

	for _, r := range mp {
		if _, ok := olds[r.New]; ok {
			return fmt.Errorf("%w: %q is both a target and a source", ErrChainedMapping, r.New)
		}
	}

	return nil
}

// Inverse returns the mapping with every pair reversed, keeping entry order.
func (mp Mapping) Inverse() (Mapping, error) {
	inverse := make(Mapping, 0, len(mp))
	for _, r := range mp {
		inverse = append(inverse, Rename{Old: r.New, New: r.Old})
	}

	if err := inverse.Validate(); err != nil {
		return nil, fmt.Errorf("invert mapping: %w", err)
	}

	return inverse, nil
}

