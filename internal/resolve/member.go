package resolve

import (
	"typeflow/internal/syntax"
)

// container is a class or object literal whose members share a key space.
// Static and instance members of a class live in separate key spaces.
type container struct {
	node   syntax.NodeID
	static bool
}

// memberOfSlot reports whether id stores the value of a keyed member and
// returns that member. A slot is the value of a method, field or plain
// property, a field without initializer, or the identifier of a
// constructor parameter property.
func (r *Resolver) memberOfSlot(id syntax.NodeID) (syntax.NodeID, bool) {
	t := r.tree

	if t.Kind(id).IsMember() && !t.Value(id).Valid() && r.isSlotMember(id) {
		return id, true
	}

	p := t.Parent(id)

	switch t.Kind(p) {
	case syntax.KindMethodDefinition, syntax.KindPropertyDefinition, syntax.KindObjectProperty:
		if t.Value(p) == id && r.isSlotMember(p) {
			return p, true
		}
	case syntax.KindTSParameterProperty:
		if t.Kind(id) == syntax.KindBindingIdentifier {
			return p, true
		}
	case syntax.KindAssignmentPattern:
		if t.Left(p) == id && t.Kind(id) == syntax.KindBindingIdentifier &&
			t.Kind(t.Parent(p)) == syntax.KindTSParameterProperty {
			return t.Parent(p), true
		}
	}

	return syntax.NoNode, false
}

// isSlotMember excludes accessors and constructors: their value is not the
// value read through the key.
func (r *Resolver) isSlotMember(m syntax.NodeID) bool {
	t := r.tree

	switch t.Kind(m) {
	case syntax.KindMethodDefinition:
		return t.Text(m) == "method"
	case syntax.KindPropertyDefinition, syntax.KindTSParameterProperty:
		return true
	case syntax.KindObjectProperty:
		text := t.Text(m)
		return text != "get" && text != "set"
	default:
		return false
	}
}

// containerOf returns the class or object literal declaring member m.
func (r *Resolver) containerOf(m syntax.NodeID) (container, bool) {
	t := r.tree
	p := t.Parent(m)

	switch t.Kind(m) {
	case syntax.KindMethodDefinition, syntax.KindPropertyDefinition:
		if t.Kind(p) != syntax.KindClassBody {
			return container{}, false
		}

		return container{node: t.Parent(p), static: t.Is(m, syntax.FlagStatic)}, true

	case syntax.KindObjectProperty:
		if t.Kind(p) != syntax.KindObjectExpression {
			return container{}, false
		}

		return container{node: p}, true

	case syntax.KindTSParameterProperty:
		ctor := t.Parent(p)
		if !t.Kind(p).IsFunction() || t.Kind(ctor) != syntax.KindMethodDefinition || t.Text(ctor) != "constructor" {
			return container{}, false
		}

		c, ok := r.containerOf(ctor)

		return container{node: c.node}, ok

	default:
		return container{}, false
	}
}

// thisContainer finds what `this` (or `super`) at id refers to. Arrow
// functions are transparent; any other function must be the value of a
// class or object member, otherwise the receiver is unknown.
func (r *Resolver) thisContainer(id syntax.NodeID) (container, bool) {
	t := r.tree

	var (
		found container
		ok    bool
	)

	t.Ancestors(id, func(p syntax.NodeID) bool {
		switch k := t.Kind(p); {
		case k == syntax.KindArrowFunctionExpression:
			return true
		case k == syntax.KindPropertyDefinition:
			found, ok = r.containerOf(p)
			return false
		case k.IsFunction():
			m := t.Parent(p)
			if (t.Kind(m) == syntax.KindMethodDefinition || t.Kind(m) == syntax.KindObjectProperty) && t.Value(m) == p {
				found, ok = r.containerOf(m)
			}

			return false
		case k.IsClass(), k == syntax.KindProgram:
			return false
		default:
			return true
		}
	})

	return found, ok
}

// containerField adds every slot of key in c and every this-access of key
// made from inside c's own methods.
func (r *Resolver) containerField(c container, key string, out *nodeSet) {
	for _, m := range r.members(c) {
		if k, ok := r.tree.StaticKey(m); !ok || k != key || !r.isSlotMember(m) {
			continue
		}

		if v := r.tree.Value(m); v.Valid() {
			out.add(v)
		} else if r.tree.Kind(m) == syntax.KindTSParameterProperty {
			out.add(r.paramPropLeaf(m))
		} else {
			out.add(m)
		}
	}

	for _, body := range r.receiverBodies(c) {
		r.collectThisRefs(body, key, out)
	}
}

// members lists the keyed members of c in the requested key space,
// including constructor parameter properties of instances.
func (r *Resolver) members(c container) []syntax.NodeID {
	t := r.tree

	if t.Kind(c.node) == syntax.KindObjectExpression {
		if c.static {
			return nil
		}

		return t.Properties(c.node)
	}

	var out []syntax.NodeID

	for _, m := range t.Statements(t.Body(c.node)) {
		if t.Is(m, syntax.FlagStatic) != c.static {
			continue
		}

		out = append(out, m)

		if !c.static && t.Kind(m) == syntax.KindMethodDefinition && t.Text(m) == "constructor" {
			for _, p := range t.Params(t.Value(m)) {
				if t.Kind(p) == syntax.KindTSParameterProperty {
					out = append(out, p)
				}
			}
		}
	}

	return out
}

func (r *Resolver) paramPropLeaf(pp syntax.NodeID) syntax.NodeID {
	t := r.tree

	leaf := t.Parameter(pp)
	if t.Kind(leaf) == syntax.KindAssignmentPattern {
		leaf = t.Left(leaf)
	}

	if t.Kind(leaf) != syntax.KindBindingIdentifier {
		return syntax.NoNode
	}

	return leaf
}

// receiverBodies returns the member values in which `this` is bound to c.
func (r *Resolver) receiverBodies(c container) []syntax.NodeID {
	t := r.tree

	var out []syntax.NodeID

	for _, m := range r.members(c) {
		v := t.Value(m)

		switch t.Kind(m) {
		case syntax.KindMethodDefinition:
			out = append(out, v)
		case syntax.KindPropertyDefinition:
			if v.Valid() {
				out = append(out, v)
			}
		case syntax.KindObjectProperty:
			if t.Kind(v) == syntax.KindFunctionExpression {
				out = append(out, v)
			}
		}
	}

	return out
}

// collectThisRefs adds `this.key` and `super.key` accesses under root,
// skipping nested functions and classes that rebind `this`.
func (r *Resolver) collectThisRefs(root syntax.NodeID, key string, out *nodeSet) {
	t := r.tree

	t.Inspect(root, func(id syntax.NodeID) bool {
		k := t.Kind(id)
		if id != root && (k.IsClass() || (k.IsFunction() && k != syntax.KindArrowFunctionExpression)) {
			return false
		}

		if k != syntax.KindMemberExpression {
			return true
		}

		if obj := t.Kind(t.Object(id)); obj != syntax.KindThisExpression && obj != syntax.KindSuper {
			return true
		}

		if other, ok := t.StaticKey(id); ok && other == key {
			out.add(id)
		}

		return true
	})
}
