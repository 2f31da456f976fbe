package syntax

// NodeID is a handle to a node in a Tree. NoNode marks an absent child.
type NodeID int32

// NoNode is the absent node.
const NoNode NodeID = 0

// Valid reports whether id refers to a node.
func (id NodeID) Valid() bool {
	return id != NoNode
}

// Span is a 1-based source range. The zero Span means "unknown".
type Span struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// node is one arena slot. Slot meaning depends on the kind:
//
//	Program, BlockStatement, ClassBody   list=statements/members
//	ImportDeclaration                    a=source list=specifiers
//	ImportSpecifier                      a=imported b=local
//	ImportDefault/NamespaceSpecifier     b=local
//	ExportNamed/DefaultDeclaration       a=declaration
//	VariableDeclaration                  text=kind list=declarators
//	VariableDeclarator                   a=target b=init
//	functions                            a=id b=body list=params
//	classes                              a=id b=superclass c=body
//	MethodDefinition, PropertyDefinition a=key b=value (text=method kind)
//	TSParameterProperty                  a=parameter text=accessibility
//	ExpressionStatement                  a=expression
//	ReturnStatement                      a=argument
//	IfStatement                          a=test b=consequent c=alternate
//	MemberExpression                     a=object b=property
//	Call/NewExpression                   a=callee list=arguments
//	AssignmentExpression                 a=left b=right text=operator
//	Array/ObjectExpression, patterns     list=elements/properties
//	ObjectProperty, BindingProperty      a=key b=value
//	SpreadElement, RestElement           a=argument
//	AssignmentPattern                    a=left b=right
//	TemplateLiteral                      list=expressions text=cooked (no substitutions)
//	Opaque                               list=children text=description (FlagScope: block scope)
type node struct {
	kind   Kind
	parent NodeID
	text   string
	flags  Flags
	a      NodeID
	b      NodeID
	c      NodeID
	list   []NodeID
	span   Span
}

// Tree is an immutable arena of nodes rooted at a Program.
type Tree struct {
	nodes []node
	root  NodeID
}

// Root returns the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

func (t *Tree) at(id NodeID) *node {
	if id <= NoNode || int(id) >= len(t.nodes) {
		return &t.nodes[0]
	}

	return &t.nodes[id]
}

// Kind returns the kind of id, KindInvalid for NoNode.
func (t *Tree) Kind(id NodeID) Kind {
	return t.at(id).kind
}

// Parent returns the parent of id, NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.at(id).parent
}

// Text returns the identifier name, literal value, operator or declaration
// kind stored on id.
func (t *Tree) Text(id NodeID) string {
	return t.at(id).text
}

// Is reports whether flag is set on id.
func (t *Tree) Is(id NodeID, flag Flags) bool {
	return t.at(id).flags&flag != 0
}

// Span returns the source range recorded for id.
func (t *Tree) Span(id NodeID) Span {
	return t.at(id).span
}

func (t *Tree) slot(id NodeID, slot int, kinds ...Kind) NodeID {
	n := t.at(id)
	if !kindIn(n.kind, kinds) {
		return NoNode
	}

	switch slot {
	case 0:
		return n.a
	case 1:
		return n.b
	default:
		return n.c
	}
}

func (t *Tree) items(id NodeID, kinds ...Kind) []NodeID {
	n := t.at(id)
	if !kindIn(n.kind, kinds) {
		return nil
	}

	return n.list
}

func kindIn(k Kind, kinds []Kind) bool {
	for _, candidate := range kinds {
		if k == candidate {
			return true
		}
	}

	return false
}

var functionKinds = []Kind{KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression}

var classKinds = []Kind{KindClassDeclaration, KindClassExpression}

// Object returns the object of a member expression.
func (t *Tree) Object(id NodeID) NodeID { return t.slot(id, 0, KindMemberExpression) }

// Property returns the property of a member expression.
func (t *Tree) Property(id NodeID) NodeID { return t.slot(id, 1, KindMemberExpression) }

// Callee returns the callee of a call or new expression.
func (t *Tree) Callee(id NodeID) NodeID {
	return t.slot(id, 0, KindCallExpression, KindNewExpression)
}

// Arguments returns the arguments of a call or new expression.
func (t *Tree) Arguments(id NodeID) []NodeID {
	return t.items(id, KindCallExpression, KindNewExpression)
}

// Left returns the left side of an assignment expression or default-value pattern.
func (t *Tree) Left(id NodeID) NodeID {
	return t.slot(id, 0, KindAssignmentExpression, KindAssignmentPattern)
}

// Right returns the right side of an assignment expression or default-value pattern.
func (t *Tree) Right(id NodeID) NodeID {
	return t.slot(id, 1, KindAssignmentExpression, KindAssignmentPattern)
}

// Target returns the binding target of a variable declarator.
func (t *Tree) Target(id NodeID) NodeID { return t.slot(id, 0, KindVariableDeclarator) }

// Init returns the initializer of a variable declarator.
func (t *Tree) Init(id NodeID) NodeID { return t.slot(id, 1, KindVariableDeclarator) }

// Declarations returns the declarators of a variable declaration.
func (t *Tree) Declarations(id NodeID) []NodeID {
	return t.items(id, KindVariableDeclaration)
}

// ID returns the name of a function or class.
func (t *Tree) ID(id NodeID) NodeID {
	if t.Kind(id).IsClass() {
		return t.slot(id, 0, classKinds...)
	}

	return t.slot(id, 0, functionKinds...)
}

// Params returns the parameter list of a function.
func (t *Tree) Params(id NodeID) []NodeID { return t.items(id, functionKinds...) }

// Body returns the body of a function (block or expression) or the class body of a class.
func (t *Tree) Body(id NodeID) NodeID {
	if t.Kind(id).IsClass() {
		return t.slot(id, 2, classKinds...)
	}

	return t.slot(id, 1, functionKinds...)
}

// SuperClass returns the heritage expression of a class.
func (t *Tree) SuperClass(id NodeID) NodeID { return t.slot(id, 1, classKinds...) }

// Statements returns the statements of a program or block, or the members of a class body.
func (t *Tree) Statements(id NodeID) []NodeID {
	return t.items(id, KindProgram, KindBlockStatement, KindClassBody)
}

// Key returns the key of a property or class member.
func (t *Tree) Key(id NodeID) NodeID {
	return t.slot(id, 0, KindObjectProperty, KindBindingProperty, KindMethodDefinition, KindPropertyDefinition)
}

// Value returns the value of a property or class member.
func (t *Tree) Value(id NodeID) NodeID {
	return t.slot(id, 1, KindObjectProperty, KindBindingProperty, KindMethodDefinition, KindPropertyDefinition)
}

// Elements returns the elements of an array literal or array pattern.
func (t *Tree) Elements(id NodeID) []NodeID {
	return t.items(id, KindArrayExpression, KindArrayPattern)
}

// Properties returns the properties of an object literal or object pattern.
func (t *Tree) Properties(id NodeID) []NodeID {
	return t.items(id, KindObjectExpression, KindObjectPattern)
}

// Argument returns the operand of a spread, rest or return.
func (t *Tree) Argument(id NodeID) NodeID {
	return t.slot(id, 0, KindSpreadElement, KindRestElement, KindReturnStatement)
}

// Expression returns the expression of an expression statement.
func (t *Tree) Expression(id NodeID) NodeID { return t.slot(id, 0, KindExpressionStatement) }

// Declaration returns the exported declaration or expression.
func (t *Tree) Declaration(id NodeID) NodeID {
	return t.slot(id, 0, KindExportNamedDeclaration, KindExportDefaultDeclaration)
}

// Parameter returns the parameter wrapped by a parameter property.
func (t *Tree) Parameter(id NodeID) NodeID { return t.slot(id, 0, KindTSParameterProperty) }

// Source returns the module specifier literal of an import declaration.
func (t *Tree) Source(id NodeID) NodeID { return t.slot(id, 0, KindImportDeclaration) }

// Specifiers returns the specifiers of an import declaration.
func (t *Tree) Specifiers(id NodeID) []NodeID { return t.items(id, KindImportDeclaration) }

// Imported returns the imported name of a named import specifier.
func (t *Tree) Imported(id NodeID) NodeID { return t.slot(id, 0, KindImportSpecifier) }

// Local returns the local binding of any import specifier.
func (t *Tree) Local(id NodeID) NodeID {
	return t.slot(id, 1, KindImportSpecifier, KindImportDefaultSpecifier, KindImportNamespaceSpecifier)
}

// Test returns the condition of an if statement.
func (t *Tree) Test(id NodeID) NodeID { return t.slot(id, 0, KindIfStatement) }

// Consequent returns the then-branch of an if statement.
func (t *Tree) Consequent(id NodeID) NodeID { return t.slot(id, 1, KindIfStatement) }

// Alternate returns the else-branch of an if statement.
func (t *Tree) Alternate(id NodeID) NodeID { return t.slot(id, 2, KindIfStatement) }

// Expressions returns the substitutions of a template literal.
func (t *Tree) Expressions(id NodeID) []NodeID { return t.items(id, KindTemplateLiteral) }

// Children returns the direct children of id in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.at(id)

	var out []NodeID
	add := func(ids ...NodeID) {
		for _, c := range ids {
			if c.Valid() {
				out = append(out, c)
			}
		}
	}

	switch n.kind {
	case KindInvalid:
		return nil
	case KindProgram, KindBlockStatement, KindClassBody, KindVariableDeclaration,
		KindArrayExpression, KindObjectExpression, KindArrayPattern, KindObjectPattern,
		KindTemplateLiteral, KindOpaque:
		add(n.list...)
	case KindImportDeclaration:
		add(n.list...)
		add(n.a)
	case KindImportSpecifier, KindImportDefaultSpecifier, KindImportNamespaceSpecifier,
		KindVariableDeclarator, KindMethodDefinition, KindPropertyDefinition,
		KindMemberExpression, KindAssignmentExpression, KindObjectProperty,
		KindBindingProperty, KindAssignmentPattern:
		add(n.a, n.b)
	case KindExportNamedDeclaration, KindExportDefaultDeclaration, KindTSParameterProperty,
		KindExpressionStatement, KindReturnStatement, KindSpreadElement, KindRestElement:
		add(n.a)
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression:
		add(n.a)
		add(n.list...)
		add(n.b)
	case KindClassDeclaration, KindClassExpression, KindIfStatement:
		add(n.a, n.b, n.c)
	case KindCallExpression, KindNewExpression:
		add(n.a)
		add(n.list...)
	case KindIdentifierReference, KindBindingIdentifier, KindIdentifierName,
		KindPrivateIdentifier, KindThisExpression, KindSuper, KindStringLiteral,
		KindNumericLiteral, KindBooleanLiteral, KindNullLiteral, KindBigIntLiteral,
		KindDecimalLiteral, KindRegExpLiteral, KindElision:
		return nil
	default:
		panic(unreachableKind(n.kind))
	}

	return out
}

// Inspect traverses the subtree rooted at id in pre-order. If visit returns
// false the children of that node are skipped.
func (t *Tree) Inspect(id NodeID, visit func(NodeID) bool) {
	if !id.Valid() || !visit(id) {
		return
	}

	for _, c := range t.Children(id) {
		t.Inspect(c, visit)
	}
}

// Ancestors calls visit for each proper ancestor of id, innermost first,
// until visit returns false.
func (t *Tree) Ancestors(id NodeID, visit func(NodeID) bool) {
	for p := t.Parent(id); p.Valid(); p = t.Parent(p) {
		if !visit(p) {
			return
		}
	}
}

// IndexIn returns the position of child in list, or -1.
func IndexIn(list []NodeID, child NodeID) int {
	for i, c := range list {
		if c == child {
			return i
		}
	}

	return -1
}
