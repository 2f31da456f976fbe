package seed

import (
	"typeflow/internal/scope"
	"typeflow/internal/shape"
	"typeflow/internal/syntax"
)

// Registry holds the externally known types. Modules is keyed by the import
// source string, Globals by the free identifier name.
type Registry struct {
	Modules map[string]shape.Type
	Globals map[string]shape.Type
}

// Seed is an externally known fact: Node holds a value of Type.
type Seed struct {
	Node syntax.NodeID
	Type shape.Type
}

// Extract returns the seeds of tree in tree order.
//
// An import declaration whose source is a registered module is seeded as a
// whole; its specifiers are derived by the engine. A reference to a
// registered global is seeded at every occurrence unless a local binding
// shadows the name.
func Extract(tree *syntax.Tree, bindings scope.Bindings, reg Registry) []Seed {
	var seeds []Seed

	tree.Inspect(tree.Root(), func(id syntax.NodeID) bool {
		switch tree.Kind(id) {
		case syntax.KindImportDeclaration:
			if tree.Parent(id) != tree.Root() {
				return false
			}

			if t, ok := reg.Modules[tree.Text(tree.Source(id))]; ok {
				seeds = append(seeds, Seed{Node: id, Type: t})
			}

			return false

		case syntax.KindIdentifierReference:
			name := tree.Text(id)

			t, ok := reg.Globals[name]
			if !ok || bindings.BindingOf(id) != nil || bindings.HasBinding(id, name) {
				return true
			}

			seeds = append(seeds, Seed{Node: id, Type: t})
		}

		return true
	})

	return seeds
}

// Unregistered returns the top-level import declarations of tree whose
// source has no registry entry, in tree order.
func Unregistered(tree *syntax.Tree, reg Registry) []syntax.NodeID {
	var out []syntax.NodeID

	for _, stmt := range tree.Statements(tree.Root()) {
		if tree.Kind(stmt) != syntax.KindImportDeclaration {
			continue
		}

		if _, ok := reg.Modules[tree.Text(tree.Source(stmt))]; !ok {
			out = append(out, stmt)
		}
	}

	return out
}
