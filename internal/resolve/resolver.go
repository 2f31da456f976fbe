package resolve

import (
	"slices"

	"typeflow/internal/scope"
	"typeflow/internal/syntax"
)

// Resolver answers alias queries for one tree. It memoizes answers and is
// not safe for concurrent use; create one per inference run.
type Resolver struct {
	tree     *syntax.Tree
	bindings scope.Bindings
	cache    map[syntax.NodeID][]syntax.NodeID
}

// New creates a Resolver over tree using the given binding facts.
func New(tree *syntax.Tree, bindings scope.Bindings) *Resolver {
	return &Resolver{
		tree:     tree,
		bindings: bindings,
		cache:    make(map[syntax.NodeID][]syntax.NodeID),
	}
}

// Tree returns the tree the resolver runs over.
func (r *Resolver) Tree() *syntax.Tree {
	return r.tree
}

// Aliases returns every node that holds the same runtime value as id,
// excluding id itself, in ascending NodeID order.
func (r *Resolver) Aliases(id syntax.NodeID) []syntax.NodeID {
	if cached, ok := r.cache[id]; ok {
		return cached
	}

	out := newNodeSet()
	r.collect(id, out, make(map[syntax.NodeID]bool))
	result := out.sortedWithout(id)
	r.cache[id] = result

	return result
}

// collect adds the aliases of id to out. A node can match several cases: a
// parameter-property identifier is both a variable and a class field.
func (r *Resolver) collect(id syntax.NodeID, out *nodeSet, visiting map[syntax.NodeID]bool) {
	if visiting[id] {
		return
	}

	visiting[id] = true
	defer delete(visiting, id)

	switch r.tree.Kind(id) {
	case syntax.KindBindingIdentifier, syntax.KindIdentifierReference:
		r.variableAliases(id, out)
	case syntax.KindMemberExpression:
		r.memberAliases(id, out, visiting)
	}

	if member, ok := r.memberOfSlot(id); ok {
		r.fieldAliases(member, out)
	}
}

// variableAliases adds the declaration leaf, reads and writes of the binding id denotes.
func (r *Resolver) variableAliases(id syntax.NodeID, out *nodeSet) {
	b := r.bindings.BindingOf(id)
	if b == nil {
		return
	}

	if leaf := r.declarationLeaf(b); leaf.Valid() {
		out.add(leaf)
	}

	out.add(b.References...)
	out.add(b.Writes...)
}

// declarationLeaf finds the BindingIdentifier of b under its declaring construct.
func (r *Resolver) declarationLeaf(b *scope.Binding) syntax.NodeID {
	t := r.tree
	decl := b.Declaration

	switch k := t.Kind(decl); {
	case k == syntax.KindVariableDeclarator:
		return r.patternLeaf(t.Target(decl), b.Name)

	case k.IsFunction():
		if b.Kind == scope.BindingParameter {
			for _, p := range t.Params(decl) {
				if leaf := r.patternLeaf(p, b.Name); leaf.Valid() {
					return leaf
				}
			}

			return syntax.NoNode
		}

		return r.patternLeaf(t.ID(decl), b.Name)

	case k.IsClass():
		return r.patternLeaf(t.ID(decl), b.Name)

	case k == syntax.KindImportSpecifier || k == syntax.KindImportDefaultSpecifier ||
		k == syntax.KindImportNamespaceSpecifier:
		return r.patternLeaf(t.Local(decl), b.Name)

	default:
		return syntax.NoNode
	}
}

// patternLeaf descends a binding pattern to the identifier named name.
func (r *Resolver) patternLeaf(p syntax.NodeID, name string) syntax.NodeID {
	t := r.tree

	switch t.Kind(p) {
	case syntax.KindBindingIdentifier:
		if t.Text(p) == name {
			return p
		}
	case syntax.KindArrayPattern:
		for _, el := range t.Elements(p) {
			if leaf := r.patternLeaf(el, name); leaf.Valid() {
				return leaf
			}
		}
	case syntax.KindObjectPattern:
		for _, prop := range t.Properties(p) {
			if leaf := r.patternLeaf(prop, name); leaf.Valid() {
				return leaf
			}
		}
	case syntax.KindBindingProperty:
		return r.patternLeaf(t.Value(p), name)
	case syntax.KindRestElement:
		return r.patternLeaf(t.Argument(p), name)
	case syntax.KindAssignmentPattern:
		return r.patternLeaf(t.Left(p), name)
	case syntax.KindTSParameterProperty:
		return r.patternLeaf(t.Parameter(p), name)
	}

	return syntax.NoNode
}

// memberAliases handles `obj.key`: every access with the same static key on
// obj or on any alias of obj. `this.key` and `super.key` resolve as fields
// of the enclosing class or object literal instead.
func (r *Resolver) memberAliases(m syntax.NodeID, out *nodeSet, visiting map[syntax.NodeID]bool) {
	t := r.tree

	key, ok := t.StaticKey(m)
	if !ok {
		return
	}

	obj := t.Object(m)

	if k := t.Kind(obj); k == syntax.KindThisExpression || k == syntax.KindSuper {
		if c, ok := r.thisContainer(obj); ok {
			r.containerField(c, key, out)
		}

		return
	}

	objects := newNodeSet()
	objects.add(obj)
	r.collect(obj, objects, visiting)

	for _, o := range objects.sorted() {
		p := t.Parent(o)
		if p == m || t.Kind(p) != syntax.KindMemberExpression || t.Object(p) != o {
			continue
		}

		if other, ok := t.StaticKey(p); ok && other == key {
			out.add(p)
		}
	}
}

func (r *Resolver) fieldAliases(member syntax.NodeID, out *nodeSet) {
	c, ok := r.containerOf(member)
	if !ok {
		return
	}

	key, ok := r.tree.StaticKey(member)
	if !ok {
		return
	}

	r.containerField(c, key, out)
}

type nodeSet struct {
	items map[syntax.NodeID]struct{}
}

func newNodeSet() *nodeSet {
	return &nodeSet{items: make(map[syntax.NodeID]struct{})}
}

func (s *nodeSet) add(ids ...syntax.NodeID) {
	for _, id := range ids {
		if id.Valid() {
			s.items[id] = struct{}{}
		}
	}
}

func (s *nodeSet) sorted() []syntax.NodeID {
	out := make([]syntax.NodeID, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}

	slices.Sort(out)

	return out
}

func (s *nodeSet) sortedWithout(self syntax.NodeID) []syntax.NodeID {
	delete(s.items, self)
	return s.sorted()
}
