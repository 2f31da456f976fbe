package infer

import (
	"slices"

	"typeflow/internal/shape"
	"typeflow/internal/syntax"
)

// Stats counts what happened during a run.
type Stats struct {
	// Steps is the number of recorded pairs.
	Steps int
	// Duplicates is the number of derived pairs that were already recorded.
	Duplicates int
	// DepthDropped is the number of derived pairs discarded for nesting too deep.
	DepthDropped int
}

// TypedNodeSet maps nodes to the types inferred for them. Entries are only
// ever added.
type TypedNodeSet struct {
	types map[syntax.NodeID]*shape.Set

	// Truncated is set when the run stopped at Config.MaxSteps before
	// reaching a fixed point.
	Truncated bool
	Stats     Stats
}

// NewTypedNodeSet returns an empty set.
func NewTypedNodeSet() *TypedNodeSet {
	return &TypedNodeSet{types: make(map[syntax.NodeID]*shape.Set)}
}

// Add records t at id and reports whether it was new.
func (s *TypedNodeSet) Add(id syntax.NodeID, t shape.Type) bool {
	set, ok := s.types[id]
	if !ok {
		set = shape.NewSet()
		s.types[id] = set
	}

	return set.Insert(t)
}

// Has reports whether t is recorded at id.
func (s *TypedNodeSet) Has(id syntax.NodeID, t shape.Type) bool {
	return s.types[id].Contains(t)
}

// HasShape reports whether some type recorded at id satisfies pred.
func (s *TypedNodeSet) HasShape(id syntax.NodeID, pred func(shape.Type) bool) bool {
	return s.types[id].AnyMatch(pred)
}

// Types returns the types recorded at id in canonical order.
func (s *TypedNodeSet) Types(id syntax.NodeID) []shape.Type {
	return s.types[id].Slice()
}

// Nodes returns the typed nodes in ascending order.
func (s *TypedNodeSet) Nodes() []syntax.NodeID {
	out := make([]syntax.NodeID, 0, len(s.types))
	for id := range s.types {
		out = append(out, id)
	}

	slices.Sort(out)

	return out
}

// Len returns the number of typed nodes.
func (s *TypedNodeSet) Len() int {
	return len(s.types)
}

// Pairs returns the number of recorded (node, type) pairs.
func (s *TypedNodeSet) Pairs() int {
	n := 0
	for _, set := range s.types {
		n += set.Len()
	}

	return n
}
