package scope

import (
	"typeflow/internal/syntax"
)

type scopeKind int

const (
	scopeModule scopeKind = iota
	scopeFunction
	scopeBlock
)

type lexicalScope struct {
	kind     scopeKind
	node     syntax.NodeID
	parent   *lexicalScope
	bindings map[string]*Binding
}

func newScope(kind scopeKind, node syntax.NodeID, parent *lexicalScope) *lexicalScope {
	return &lexicalScope{
		kind:     kind,
		node:     node,
		parent:   parent,
		bindings: make(map[string]*Binding),
	}
}

func (s *lexicalScope) lookup(name string) *Binding {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.bindings[name]; ok {
			return b
		}
	}

	return nil
}

// Scopes holds the bindings of one tree.
type Scopes struct {
	tree       *syntax.Tree
	enclosing  map[syntax.NodeID]*lexicalScope
	bindingOf  map[syntax.NodeID]*Binding
	bindings   []*Binding
	unresolved []syntax.NodeID
}

var _ Bindings = (*Scopes)(nil)

// Analyze builds the scope chain of tree and resolves every identifier
// reference. Declarations are collected first so hoisted names resolve
// regardless of position.
func Analyze(tree *syntax.Tree) *Scopes {
	s := &Scopes{
		tree:      tree,
		enclosing: make(map[syntax.NodeID]*lexicalScope),
		bindingOf: make(map[syntax.NodeID]*Binding),
	}

	module := newScope(scopeModule, tree.Root(), nil)
	s.declareIn(tree.Root(), module, module)
	s.resolveReferences()

	return s
}

// BindingOf returns the binding denoted by id.
func (s *Scopes) BindingOf(id syntax.NodeID) *Binding {
	return s.bindingOf[id]
}

// HasBinding reports whether name is bound in the scope chain enclosing at.
func (s *Scopes) HasBinding(at syntax.NodeID, name string) bool {
	sc, ok := s.enclosing[at]
	if !ok {
		return false
	}

	return sc.lookup(name) != nil
}

// Bindings returns every binding in declaration order.
func (s *Scopes) Bindings() []*Binding {
	return s.bindings
}

// Unresolved returns the free identifier references in tree order.
func (s *Scopes) Unresolved() []syntax.NodeID {
	return s.unresolved
}

func (s *Scopes) declareIn(id syntax.NodeID, sc, fn *lexicalScope) {
	t := s.tree
	s.enclosing[id] = sc

	switch k := t.Kind(id); {
	case k == syntax.KindVariableDeclaration:
		target := sc
		if t.Text(id) == "var" {
			target = fn
		}

		for _, d := range t.Declarations(id) {
			s.declarePattern(target, t.Target(d), BindingLocal, d)
		}

	case k == syntax.KindFunctionDeclaration:
		s.declare(sc, t.ID(id), BindingHoistedFunction, id)
		s.enterFunction(id, sc)

		return

	case k == syntax.KindFunctionExpression || k == syntax.KindArrowFunctionExpression:
		s.enterFunction(id, sc)

		return

	case k == syntax.KindClassDeclaration:
		s.declare(sc, t.ID(id), BindingLocal, id)

	case k == syntax.KindClassExpression:
		if name := t.ID(id); name.Valid() {
			inner := newScope(scopeBlock, id, sc)
			s.declare(inner, name, BindingLocal, id)
			s.visitChildren(id, inner, fn)

			return
		}

	case k == syntax.KindImportSpecifier || k == syntax.KindImportDefaultSpecifier ||
		k == syntax.KindImportNamespaceSpecifier:
		s.declare(sc, t.Local(id), BindingModuleImport, id)

	case k == syntax.KindOpaque && t.Is(id, syntax.FlagScope):
		block := newScope(scopeBlock, id, sc)
		s.visitChildren(id, block, fn)

		return

	case k == syntax.KindBlockStatement:
		if !t.Kind(t.Parent(id)).IsFunction() {
			block := newScope(scopeBlock, id, sc)
			s.visitChildren(id, block, fn)

			return
		}
	}

	s.visitChildren(id, sc, fn)
}

func (s *Scopes) visitChildren(id syntax.NodeID, sc, fn *lexicalScope) {
	for _, c := range s.tree.Children(id) {
		s.declareIn(c, sc, fn)
	}
}

func (s *Scopes) enterFunction(id syntax.NodeID, outer *lexicalScope) {
	t := s.tree
	fs := newScope(scopeFunction, id, outer)

	if t.Kind(id) == syntax.KindFunctionExpression {
		s.declare(fs, t.ID(id), BindingLocal, id)
	}

	for _, p := range t.Params(id) {
		s.declarePattern(fs, p, BindingParameter, id)
	}

	for _, c := range t.Children(id) {
		if t.Kind(id) == syntax.KindFunctionDeclaration && c == t.ID(id) {
			s.enclosing[c] = outer
			continue
		}

		s.declareIn(c, fs, fs)
	}
}

// declarePattern declares every binding identifier reachable through the
// destructuring pattern p. Default values and computed keys are not targets.
func (s *Scopes) declarePattern(sc *lexicalScope, p syntax.NodeID, kind BindingKind, decl syntax.NodeID) {
	t := s.tree

	switch t.Kind(p) {
	case syntax.KindBindingIdentifier:
		s.declare(sc, p, kind, decl)
	case syntax.KindArrayPattern:
		for _, el := range t.Elements(p) {
			s.declarePattern(sc, el, kind, decl)
		}
	case syntax.KindObjectPattern:
		for _, prop := range t.Properties(p) {
			s.declarePattern(sc, prop, kind, decl)
		}
	case syntax.KindBindingProperty:
		s.declarePattern(sc, t.Value(p), kind, decl)
	case syntax.KindRestElement:
		s.declarePattern(sc, t.Argument(p), kind, decl)
	case syntax.KindAssignmentPattern:
		s.declarePattern(sc, t.Left(p), kind, decl)
	case syntax.KindTSParameterProperty:
		s.declarePattern(sc, t.Parameter(p), kind, decl)
	}
}

func (s *Scopes) declare(sc *lexicalScope, ident syntax.NodeID, kind BindingKind, decl syntax.NodeID) {
	if s.tree.Kind(ident) != syntax.KindBindingIdentifier {
		return
	}

	name := s.tree.Text(ident)

	if existing, ok := sc.bindings[name]; ok {
		existing.Writes = append(existing.Writes, ident)
		s.bindingOf[ident] = existing

		return
	}

	b := &Binding{Name: name, Kind: kind, Declaration: decl}
	sc.bindings[name] = b
	s.bindings = append(s.bindings, b)
	s.bindingOf[ident] = b
}

func (s *Scopes) resolveReferences() {
	t := s.tree

	t.Inspect(t.Root(), func(id syntax.NodeID) bool {
		if t.Kind(id) != syntax.KindIdentifierReference {
			return true
		}

		sc := s.enclosing[id]
		b := sc.lookup(t.Text(id))

		if b == nil {
			s.unresolved = append(s.unresolved, id)
			return true
		}

		s.bindingOf[id] = b

		if IsWriteTarget(t, id) {
			b.Writes = append(b.Writes, id)
		} else {
			b.References = append(b.References, id)
		}

		return true
	})
}

// IsWriteTarget reports whether the identifier reference id is assigned to,
// directly or as a leaf of a destructuring assignment.
func IsWriteTarget(t *syntax.Tree, id syntax.NodeID) bool {
	child := id

	for p := t.Parent(id); p.Valid(); child, p = p, t.Parent(p) {
		switch t.Kind(p) {
		case syntax.KindAssignmentExpression:
			return t.Left(p) == child
		case syntax.KindArrayPattern, syntax.KindObjectPattern, syntax.KindRestElement:
			continue
		case syntax.KindBindingProperty:
			if t.Value(p) != child {
				return false
			}
		case syntax.KindAssignmentPattern:
			if t.Left(p) != child {
				return false
			}
		default:
			return false
		}
	}

	return false
}
