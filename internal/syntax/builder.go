package syntax

// Builder assembles a Tree bottom-up. Every constructor returns the new
// node's handle and adopts the given children. A Builder must not be used
// after Build.
type Builder struct {
	nodes []node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make([]node, 1, 64)}
}

// Build finalizes the tree rooted at root.
func (b *Builder) Build(root NodeID) *Tree {
	t := &Tree{nodes: b.nodes, root: root}
	b.nodes = nil

	return t
}

// Add adds a node of any kind with explicit slots. Front ends use it; the
// typed constructors below cover the common shapes.
func (b *Builder) Add(kind Kind, text string, flags Flags, a, bb, c NodeID, list ...NodeID) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node{
		kind:  kind,
		text:  text,
		flags: flags,
		a:     a,
		b:     bb,
		c:     c,
		list:  list,
	})

	for _, child := range []NodeID{a, bb, c} {
		b.adopt(id, child)
	}

	for _, child := range list {
		b.adopt(id, child)
	}

	return id
}

func (b *Builder) adopt(parent, child NodeID) {
	if child.Valid() && int(child) < len(b.nodes) {
		b.nodes[child].parent = parent
	}
}

// SetSpan records the source range of id.
func (b *Builder) SetSpan(id NodeID, span Span) {
	if id.Valid() && int(id) < len(b.nodes) {
		b.nodes[id].span = span
	}
}

// AddFlags sets extra flags on id.
func (b *Builder) AddFlags(id NodeID, flags Flags) {
	if id.Valid() && int(id) < len(b.nodes) {
		b.nodes[id].flags |= flags
	}
}

// Kind returns the kind of a node created so far.
func (b *Builder) Kind(id NodeID) Kind {
	if !id.Valid() || int(id) >= len(b.nodes) {
		return KindInvalid
	}

	return b.nodes[id].kind
}

func (b *Builder) Program(stmts ...NodeID) NodeID {
	return b.Add(KindProgram, "", 0, NoNode, NoNode, NoNode, stmts...)
}

// Import builds `import <specs> from "source"`.
func (b *Builder) Import(source string, specs ...NodeID) NodeID {
	return b.Add(KindImportDeclaration, "", 0, b.Str(source), NoNode, NoNode, specs...)
}

// ImportNamed builds `imported as local`.
func (b *Builder) ImportNamed(imported, local string) NodeID {
	return b.Add(KindImportSpecifier, "", 0, b.Name(imported), b.Binding(local), NoNode)
}

func (b *Builder) ImportDefault(local string) NodeID {
	return b.Add(KindImportDefaultSpecifier, "", 0, NoNode, b.Binding(local), NoNode)
}

func (b *Builder) ImportNamespace(local string) NodeID {
	return b.Add(KindImportNamespaceSpecifier, "", 0, NoNode, b.Binding(local), NoNode)
}

func (b *Builder) ExportNamed(decl NodeID) NodeID {
	return b.Add(KindExportNamedDeclaration, "", 0, decl, NoNode, NoNode)
}

func (b *Builder) ExportDefault(decl NodeID) NodeID {
	return b.Add(KindExportDefaultDeclaration, "", 0, decl, NoNode, NoNode)
}

// Var builds a variable declaration of the given kind (var, let, const).
func (b *Builder) Var(kind string, declarators ...NodeID) NodeID {
	return b.Add(KindVariableDeclaration, kind, 0, NoNode, NoNode, NoNode, declarators...)
}

func (b *Builder) Const(declarators ...NodeID) NodeID { return b.Var("const", declarators...) }

func (b *Builder) Let(declarators ...NodeID) NodeID { return b.Var("let", declarators...) }

func (b *Builder) Declarator(target, init NodeID) NodeID {
	return b.Add(KindVariableDeclarator, "", 0, target, init, NoNode)
}

// FuncDecl builds `function name(params) body`.
func (b *Builder) FuncDecl(name string, params []NodeID, body NodeID) NodeID {
	return b.Add(KindFunctionDeclaration, "", 0, b.Binding(name), body, NoNode, params...)
}

// FuncExpr builds a function expression; an empty name makes it anonymous.
func (b *Builder) FuncExpr(name string, params []NodeID, body NodeID) NodeID {
	id := NoNode
	if name != "" {
		id = b.Binding(name)
	}

	return b.Add(KindFunctionExpression, "", 0, id, body, NoNode, params...)
}

// Arrow builds an arrow function. A body that is not a block statement
// makes it expression-bodied.
func (b *Builder) Arrow(params []NodeID, body NodeID) NodeID {
	var flags Flags
	if b.Kind(body) != KindBlockStatement {
		flags = FlagExpressionBody
	}

	return b.Add(KindArrowFunctionExpression, "", flags, NoNode, body, NoNode, params...)
}

// Class builds a class declaration.
func (b *Builder) Class(name string, superClass NodeID, members ...NodeID) NodeID {
	body := b.Add(KindClassBody, "", 0, NoNode, NoNode, NoNode, members...)
	return b.Add(KindClassDeclaration, "", 0, b.Binding(name), superClass, body)
}

// ClassExpr builds a class expression; an empty name makes it anonymous.
func (b *Builder) ClassExpr(name string, superClass NodeID, members ...NodeID) NodeID {
	id := NoNode
	if name != "" {
		id = b.Binding(name)
	}

	body := b.Add(KindClassBody, "", 0, NoNode, NoNode, NoNode, members...)

	return b.Add(KindClassExpression, "", 0, id, superClass, body)
}

// Method builds a class method `key(...) {...}` around a function expression.
func (b *Builder) Method(key string, fn NodeID) NodeID {
	kind := "method"
	if key == "constructor" {
		kind = "constructor"
	}

	return b.Add(KindMethodDefinition, kind, 0, b.Name(key), fn, NoNode)
}

func (b *Builder) StaticMethod(key string, fn NodeID) NodeID {
	return b.Add(KindMethodDefinition, "method", FlagStatic, b.Name(key), fn, NoNode)
}

// Field builds a class field; value may be NoNode.
func (b *Builder) Field(key string, value NodeID) NodeID {
	return b.Add(KindPropertyDefinition, "", 0, b.Name(key), value, NoNode)
}

func (b *Builder) StaticField(key string, value NodeID) NodeID {
	return b.Add(KindPropertyDefinition, "", FlagStatic, b.Name(key), value, NoNode)
}

// ParamProp builds a constructor parameter property such as `private x`.
func (b *Builder) ParamProp(accessibility string, param NodeID) NodeID {
	return b.Add(KindTSParameterProperty, accessibility, 0, param, NoNode, NoNode)
}

func (b *Builder) Block(stmts ...NodeID) NodeID {
	return b.Add(KindBlockStatement, "", 0, NoNode, NoNode, NoNode, stmts...)
}

func (b *Builder) ExprStmt(expr NodeID) NodeID {
	return b.Add(KindExpressionStatement, "", 0, expr, NoNode, NoNode)
}

func (b *Builder) Return(arg NodeID) NodeID {
	return b.Add(KindReturnStatement, "", 0, arg, NoNode, NoNode)
}

func (b *Builder) If(test, consequent, alternate NodeID) NodeID {
	return b.Add(KindIfStatement, "", 0, test, consequent, alternate)
}

// Ref builds an identifier reference (a read or assignment target).
func (b *Builder) Ref(name string) NodeID {
	return b.Add(KindIdentifierReference, name, 0, NoNode, NoNode, NoNode)
}

// Binding builds a binding identifier (a declaration site).
func (b *Builder) Binding(name string) NodeID {
	return b.Add(KindBindingIdentifier, name, 0, NoNode, NoNode, NoNode)
}

// Name builds a property name.
func (b *Builder) Name(name string) NodeID {
	return b.Add(KindIdentifierName, name, 0, NoNode, NoNode, NoNode)
}

func (b *Builder) Private(name string) NodeID {
	return b.Add(KindPrivateIdentifier, name, 0, NoNode, NoNode, NoNode)
}

func (b *Builder) This() NodeID { return b.Add(KindThisExpression, "", 0, NoNode, NoNode, NoNode) }

func (b *Builder) Super() NodeID { return b.Add(KindSuper, "", 0, NoNode, NoNode, NoNode) }

func (b *Builder) Str(value string) NodeID {
	return b.Add(KindStringLiteral, value, 0, NoNode, NoNode, NoNode)
}

// Num builds a numeric literal from its source text.
func (b *Builder) Num(raw string) NodeID {
	return b.Add(KindNumericLiteral, raw, 0, NoNode, NoNode, NoNode)
}

func (b *Builder) Bool(value bool) NodeID {
	text := "false"
	if value {
		text = "true"
	}

	return b.Add(KindBooleanLiteral, text, 0, NoNode, NoNode, NoNode)
}

func (b *Builder) Null() NodeID { return b.Add(KindNullLiteral, "", 0, NoNode, NoNode, NoNode) }

func (b *Builder) BigInt(raw string) NodeID {
	return b.Add(KindBigIntLiteral, raw, 0, NoNode, NoNode, NoNode)
}

func (b *Builder) Decimal(raw string) NodeID {
	return b.Add(KindDecimalLiteral, raw, 0, NoNode, NoNode, NoNode)
}

func (b *Builder) Regex(pattern string) NodeID {
	return b.Add(KindRegExpLiteral, pattern, 0, NoNode, NoNode, NoNode)
}

// Template builds a template literal; cooked is only meaningful when there
// are no substitutions.
func (b *Builder) Template(cooked string, exprs ...NodeID) NodeID {
	return b.Add(KindTemplateLiteral, cooked, 0, NoNode, NoNode, NoNode, exprs...)
}

// Member builds `object.name`.
func (b *Builder) Member(object NodeID, name string) NodeID {
	return b.Add(KindMemberExpression, "", 0, object, b.Name(name), NoNode)
}

// OptMember builds `object?.name`.
func (b *Builder) OptMember(object NodeID, name string) NodeID {
	return b.Add(KindMemberExpression, "", FlagOptional, object, b.Name(name), NoNode)
}

// Index builds `object[property]`.
func (b *Builder) Index(object, property NodeID) NodeID {
	return b.Add(KindMemberExpression, "", FlagComputed, object, property, NoNode)
}

func (b *Builder) Call(callee NodeID, args ...NodeID) NodeID {
	return b.Add(KindCallExpression, "", 0, callee, NoNode, NoNode, args...)
}

func (b *Builder) NewExpr(callee NodeID, args ...NodeID) NodeID {
	return b.Add(KindNewExpression, "", 0, callee, NoNode, NoNode, args...)
}

// Assign builds `left = right`.
func (b *Builder) Assign(left, right NodeID) NodeID {
	return b.AssignOp("=", left, right)
}

func (b *Builder) AssignOp(op string, left, right NodeID) NodeID {
	return b.Add(KindAssignmentExpression, op, 0, left, right, NoNode)
}

func (b *Builder) Array(elems ...NodeID) NodeID {
	return b.Add(KindArrayExpression, "", 0, NoNode, NoNode, NoNode, elems...)
}

func (b *Builder) Object(props ...NodeID) NodeID {
	return b.Add(KindObjectExpression, "", 0, NoNode, NoNode, NoNode, props...)
}

// Prop builds `key: value` in an object literal.
func (b *Builder) Prop(key string, value NodeID) NodeID {
	return b.Add(KindObjectProperty, "", 0, b.Name(key), value, NoNode)
}

// PropKey builds a property with an explicit key node; computed marks `[key]: value`.
func (b *Builder) PropKey(key NodeID, computed bool, value NodeID) NodeID {
	var flags Flags
	if computed {
		flags = FlagComputed
	}

	return b.Add(KindObjectProperty, "", flags, key, value, NoNode)
}

// PropShorthand builds `{ name }` in an object literal.
func (b *Builder) PropShorthand(name string) NodeID {
	return b.Add(KindObjectProperty, "", FlagShorthand, b.Name(name), b.Ref(name), NoNode)
}

// PropMethod builds `key() {...}` in an object literal.
func (b *Builder) PropMethod(key string, fn NodeID) NodeID {
	return b.Add(KindObjectProperty, "", FlagMethod, b.Name(key), fn, NoNode)
}

func (b *Builder) Spread(arg NodeID) NodeID {
	return b.Add(KindSpreadElement, "", 0, arg, NoNode, NoNode)
}

func (b *Builder) ArrayPat(elems ...NodeID) NodeID {
	return b.Add(KindArrayPattern, "", 0, NoNode, NoNode, NoNode, elems...)
}

func (b *Builder) ObjectPat(props ...NodeID) NodeID {
	return b.Add(KindObjectPattern, "", 0, NoNode, NoNode, NoNode, props...)
}

// PatProp builds `key: value` in an object pattern.
func (b *Builder) PatProp(key string, value NodeID) NodeID {
	return b.Add(KindBindingProperty, "", 0, b.Name(key), value, NoNode)
}

// PatPropKey builds a pattern property with an explicit key node.
func (b *Builder) PatPropKey(key NodeID, computed bool, value NodeID) NodeID {
	var flags Flags
	if computed {
		flags = FlagComputed
	}

	return b.Add(KindBindingProperty, "", flags, key, value, NoNode)
}

// PatShorthand builds `{ name }` in an object pattern.
func (b *Builder) PatShorthand(name string) NodeID {
	return b.Add(KindBindingProperty, "", FlagShorthand, b.Name(name), b.Binding(name), NoNode)
}

func (b *Builder) Rest(arg NodeID) NodeID {
	return b.Add(KindRestElement, "", 0, arg, NoNode, NoNode)
}

// Default builds the default-value pattern `left = right`.
func (b *Builder) Default(left, right NodeID) NodeID {
	return b.Add(KindAssignmentPattern, "", 0, left, right, NoNode)
}

// Hole builds an array elision.
func (b *Builder) Hole() NodeID { return b.Add(KindElision, "", 0, NoNode, NoNode, NoNode) }

func (b *Builder) Opaque(desc string, children ...NodeID) NodeID {
	return b.Add(KindOpaque, desc, 0, NoNode, NoNode, NoNode, children...)
}

// Scoped builds an Opaque construct whose children live in their own block
// scope, such as `for (let i ...) {}` or `catch (e) {}`.
func (b *Builder) Scoped(desc string, children ...NodeID) NodeID {
	return b.Add(KindOpaque, desc, FlagScope, NoNode, NoNode, NoNode, children...)
}
