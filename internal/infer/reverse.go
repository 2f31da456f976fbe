package infer

import (
	"typeflow/internal/shape"
	"typeflow/internal/syntax"
)

// rebuildArray types an array literal or pattern from one typed element.
// The container becomes a tuple holding t at the element's position and Any
// (or undefined, for holes of a literal) elsewhere. An element after a
// spread has no known position and contributes nothing. Neither does an
// element typed Any: it only echoes the fillers of an earlier rebuild.
func (e *Engine) rebuildArray(container, child syntax.NodeID, t shape.Type) {
	if t.Kind() == shape.KindAny {
		return
	}

	tree := e.tree
	elems := tree.Elements(container)
	literal := tree.Kind(container) == syntax.KindArrayExpression

	pos := syntax.IndexIn(elems, child)
	if pos < 0 {
		return
	}

	fixed := make([]shape.Type, 0, len(elems))

	var rest shape.Type
	if !literal {
		rest = shape.Any()
	}

	for i, el := range elems {
		switch tree.Kind(el) {
		case syntax.KindSpreadElement, syntax.KindRestElement:
			if i < pos {
				return
			}

			if i == pos {
				e.push(container, spliceRest(fixed, t))
				return
			}

			e.push(container, shape.Tuple(fixed, shape.Any()))

			return

		case syntax.KindElision:
			if literal {
				fixed = append(fixed, shape.Undefined)
			} else {
				fixed = append(fixed, shape.Any())
			}

		default:
			if i == pos {
				fixed = append(fixed, t)
			} else {
				fixed = append(fixed, shape.Any())
			}
		}
	}

	e.push(container, shape.Tuple(fixed, rest))
}

// spliceRest appends the positions described by a typed spread or rest
// element to the fixed prefix.
func spliceRest(fixed []shape.Type, t shape.Type) shape.Type {
	switch v := t.(type) {
	case *shape.TupleType:
		return shape.Tuple(append(fixed, v.Elements()...), v.Rest())
	case *shape.ArrayType:
		return shape.Tuple(fixed, v.Elem())
	default:
		return shape.Tuple(fixed, shape.Any())
	}
}

// rebuildObject types an object literal or pattern from one typed property
// value as an object with that single field.
func (e *Engine) rebuildObject(container, prop syntax.NodeID, t shape.Type) {
	if isAccessor(e.tree, prop) {
		return
	}

	key, ok := e.tree.StaticKey(prop)
	if !ok {
		return
	}

	e.push(container, shape.Object([]shape.Field{{Key: key, Type: t}}, nil))
}
