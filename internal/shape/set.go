package shape

import (
	"sort"

	"github.com/hashicorp/go-set/v3"
)

// Set is a structural set of types. The zero value is not usable; call NewSet.
type Set struct {
	items *set.HashSet[Type, string]
}

// NewSet returns a set holding ts.
func NewSet(ts ...Type) *Set {
	s := &Set{items: set.NewHashSet[Type, string](len(ts))}
	for _, t := range ts {
		s.Insert(t)
	}

	return s
}

// Insert adds t and reports whether it was absent.
func (s *Set) Insert(t Type) bool {
	if t == nil {
		return false
	}

	return s.items.Insert(t)
}

// Contains reports whether a type structurally equal to t is present.
func (s *Set) Contains(t Type) bool {
	if s == nil || t == nil {
		return false
	}

	return s.items.Contains(t)
}

// Len returns the number of types.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return s.items.Size()
}

// Slice returns the types ordered by their canonical encoding.
func (s *Set) Slice() []Type {
	if s == nil {
		return nil
	}

	out := s.items.Slice()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Hash() < out[j].Hash()
	})

	return out
}

// AnyMatch reports whether some type satisfies pred.
func (s *Set) AnyMatch(pred func(Type) bool) bool {
	for _, t := range s.Slice() {
		if pred(t) {
			return true
		}
	}

	return false
}

// Strings returns the rendered types in Slice order.
func (s *Set) Strings() []string {
	ts := s.Slice()

	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}

	return out
}
