package infer

import (
	"typeflow/internal/shape"
	"typeflow/internal/syntax"
)

// propagateLinks handles edges that carry a type unchanged, whatever its shape.
func (e *Engine) propagateLinks(id syntax.NodeID, t shape.Type) {
	tree := e.tree
	p := tree.Parent(id)

	switch tree.Kind(id) {
	case syntax.KindFunctionDeclaration, syntax.KindFunctionExpression,
		syntax.KindClassDeclaration, syntax.KindClassExpression:
		e.push(tree.ID(id), t)
	case syntax.KindAssignmentPattern:
		e.push(tree.Left(id), t)
	case syntax.KindTSParameterProperty:
		e.push(tree.Parameter(id), t)
	case syntax.KindSpreadElement, syntax.KindRestElement:
		e.push(tree.Argument(id), t)
	}

	switch tree.Kind(p) {
	case syntax.KindVariableDeclarator:
		switch id {
		case tree.Init(p):
			e.push(tree.Target(p), t)
		case tree.Target(p):
			e.push(tree.Init(p), t)
		}

	case syntax.KindAssignmentExpression:
		if !carriesValue(tree.Text(p)) {
			break
		}

		switch id {
		case tree.Left(p):
			e.push(tree.Right(p), t)
		case tree.Right(p):
			e.push(tree.Left(p), t)
			e.push(p, t)
		}

	case syntax.KindAssignmentPattern:
		if id == tree.Right(p) {
			e.push(tree.Left(p), t)
		}

	case syntax.KindFunctionDeclaration, syntax.KindFunctionExpression,
		syntax.KindClassDeclaration, syntax.KindClassExpression:
		if id == tree.ID(p) {
			e.push(p, t)
		}

	case syntax.KindTSParameterProperty:
		e.push(p, t)

	case syntax.KindSpreadElement, syntax.KindRestElement:
		e.push(p, t)
	}
}

// propagateParent handles a typed node in a position whose meaning depends
// on the type's shape: the object of a member access, the callee of a call,
// or an element or property value of a container.
func (e *Engine) propagateParent(id syntax.NodeID, t shape.Type) {
	tree := e.tree
	p := tree.Parent(id)

	switch k := tree.Kind(p); {
	case k == syntax.KindMemberExpression:
		if tree.Object(p) == id {
			e.memberAccess(p, t)
		}

	case k == syntax.KindCallExpression || k == syntax.KindNewExpression:
		if tree.Callee(p) == id {
			if fn, ok := t.(*shape.FunctionType); ok {
				e.call(p, fn)
			}
		}

	case k.IsArrayLike():
		e.rebuildArray(p, id, t)

	case k == syntax.KindObjectProperty || k == syntax.KindBindingProperty:
		if tree.Value(p) == id && tree.Kind(tree.Parent(p)).IsObjectLike() {
			e.rebuildObject(tree.Parent(p), p, t)
		}
	}
}

// propagateContainer handles a typed node whose own structure decomposes
// the type: functions, array and object literals or patterns, imports.
func (e *Engine) propagateContainer(id syntax.NodeID, t shape.Type) {
	tree := e.tree

	switch k := tree.Kind(id); {
	case k.IsFunction():
		if fn, ok := t.(*shape.FunctionType); ok {
			e.function(id, fn)
		}

	case k.IsArrayLike():
		e.distributeArray(id, t)

	case k == syntax.KindObjectExpression:
		if obj, ok := t.(*shape.ObjectType); ok {
			e.distributeObject(id, obj)
		}

	case k == syntax.KindObjectPattern:
		switch v := t.(type) {
		case *shape.ObjectType:
			e.distributeObject(id, v)
		case *shape.ArrayType, *shape.TupleType:
			e.objectPatternOverArray(id, v)
		}

	case k == syntax.KindImportDeclaration:
		e.importDeclaration(id, t)
	}
}

// memberAccess types `obj.key` from the type of obj.
func (e *Engine) memberAccess(m syntax.NodeID, t shape.Type) {
	key, ok := e.tree.StaticKey(m)
	if !ok {
		return
	}

	if ft, ok := indexedAccess(t, key); ok {
		e.push(m, ft)
	}
}

// indexedAccess returns the type read through key on a value of type t.
func indexedAccess(t shape.Type, key string) (shape.Type, bool) {
	switch v := t.(type) {
	case *shape.ObjectType:
		return shape.FieldAt(v, key)

	case *shape.ArrayType:
		if key == "length" {
			return shape.Number, true
		}

		if _, ok := shape.Index(key); ok {
			return v.Elem(), true
		}

	case *shape.TupleType:
		if key == "length" {
			return shape.Number, true
		}

		if i, ok := shape.Index(key); ok {
			return shape.ElementAt(v, i)
		}
	}

	return nil, false
}

// call matches the arguments of call against fn's parameters and types the
// call itself with fn's result. Positions after a spread argument are
// unknown and get nothing.
func (e *Engine) call(call syntax.NodeID, fn *shape.FunctionType) {
	params := fn.Args()

	for i, arg := range e.tree.Arguments(call) {
		if e.tree.Kind(arg) == syntax.KindSpreadElement {
			e.push(arg, shape.Remaining(params, i))
			break
		}

		if pt, ok := shape.ElementAt(params, i); ok {
			e.push(arg, pt)
		}
	}

	e.push(call, shape.Result(fn))
}

// function types the parameters and exit expressions of a function-like node.
func (e *Engine) function(id syntax.NodeID, fn *shape.FunctionType) {
	tree := e.tree
	args := fn.Args()

	for i, param := range tree.Params(id) {
		if tree.Kind(param) == syntax.KindRestElement {
			e.push(param, shape.Remaining(args, i))
			break
		}

		if pt, ok := shape.ElementAt(args, i); ok {
			e.push(param, pt)
		}
	}

	for _, exit := range exitExpressions(tree, id) {
		e.push(exit, shape.Result(fn))
	}
}

// exitExpressions returns the expressions whose value a function returns:
// the body of an expression-bodied arrow, or every return argument that
// belongs to fn itself rather than to a nested function or class.
func exitExpressions(tree *syntax.Tree, fn syntax.NodeID) []syntax.NodeID {
	body := tree.Body(fn)

	if tree.Is(fn, syntax.FlagExpressionBody) {
		return []syntax.NodeID{body}
	}

	var out []syntax.NodeID

	tree.Inspect(body, func(id syntax.NodeID) bool {
		switch k := tree.Kind(id); {
		case k.IsFunction(), k.IsClass():
			return false
		case k == syntax.KindReturnStatement:
			if arg := tree.Argument(id); arg.Valid() {
				out = append(out, arg)
			}
		}

		return true
	})

	return out
}

// distributeArray types the elements of an array literal or pattern.
func (e *Engine) distributeArray(id syntax.NodeID, t shape.Type) {
	tree := e.tree

	switch v := t.(type) {
	case *shape.ArrayType:
		for _, el := range tree.Elements(id) {
			switch tree.Kind(el) {
			case syntax.KindElision:
			case syntax.KindSpreadElement, syntax.KindRestElement:
				e.push(el, v)
			default:
				e.push(el, v.Elem())
			}
		}

	case *shape.TupleType:
		for i, el := range tree.Elements(id) {
			switch tree.Kind(el) {
			case syntax.KindElision:
				continue
			case syntax.KindSpreadElement, syntax.KindRestElement:
				e.push(el, shape.Remaining(v, i))
				return
			}

			if et, ok := shape.ElementAt(v, i); ok {
				e.push(el, et)
			}
		}
	}
}

// distributeObject types the property values of an object literal or
// pattern. A spread or rest property receives the fields not matched by a
// property before it.
func (e *Engine) distributeObject(id syntax.NodeID, obj *shape.ObjectType) {
	tree := e.tree
	matched := make(map[string]bool)

	for _, prop := range tree.Properties(id) {
		switch tree.Kind(prop) {
		case syntax.KindSpreadElement, syntax.KindRestElement:
			e.push(prop, shape.Without(obj, matched))

		case syntax.KindObjectProperty, syntax.KindBindingProperty:
			key, ok := tree.StaticKey(prop)
			if !ok {
				continue
			}

			matched[key] = true

			if isAccessor(tree, prop) {
				continue
			}

			if ft, ok := shape.FieldAt(obj, key); ok {
				e.push(tree.Value(prop), ft)
			}
		}
	}
}

// objectPatternOverArray handles `const { 0: first, length } = arr`.
func (e *Engine) objectPatternOverArray(id syntax.NodeID, t shape.Type) {
	tree := e.tree

	for _, prop := range tree.Properties(id) {
		if tree.Kind(prop) != syntax.KindBindingProperty {
			continue
		}

		key, ok := tree.StaticKey(prop)
		if !ok {
			continue
		}

		if et, ok := indexedAccess(t, key); ok {
			e.push(tree.Value(prop), et)
		}
	}
}

// importDeclaration binds the specifiers of a typed import declaration.
func (e *Engine) importDeclaration(id syntax.NodeID, t shape.Type) {
	tree := e.tree

	for _, spec := range tree.Specifiers(id) {
		if tree.Kind(spec) == syntax.KindImportNamespaceSpecifier {
			e.push(tree.Local(spec), t)
			continue
		}

		name, ok := tree.ImportedName(spec)
		if !ok {
			continue
		}

		for _, ft := range exportedFields(t, name) {
			e.push(tree.Local(spec), ft)
		}
	}
}

// exportedFields looks name up in a module type, descending into union and
// intersection variants.
func exportedFields(t shape.Type, name string) []shape.Type {
	switch v := t.(type) {
	case *shape.ObjectType:
		if ft, ok := shape.FieldAt(v, name); ok {
			return []shape.Type{ft}
		}
	case *shape.UnionType, *shape.IntersectionType:
		var out []shape.Type
		for _, variant := range shape.Variants(v) {
			out = append(out, exportedFields(variant, name)...)
		}

		return out
	}

	return nil
}

// carriesValue reports whether an assignment operator stores one of its
// operands unchanged. Arithmetic compound assignments compute a new value.
func carriesValue(op string) bool {
	switch op {
	case "=", "||=", "&&=", "??=":
		return true
	default:
		return false
	}
}

func isAccessor(tree *syntax.Tree, prop syntax.NodeID) bool {
	if tree.Kind(prop) != syntax.KindObjectProperty {
		return false
	}

	text := tree.Text(prop)

	return text == "get" || text == "set"
}
