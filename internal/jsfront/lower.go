package jsfront

import (
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"typeflow/internal/syntax"
)

const none = syntax.NoNode

// lowerer converts one tree-sitter tree bottom-up into a syntax.Builder.
type lowerer struct {
	src []byte
	b   *syntax.Builder
}

func (l *lowerer) text(n *sitter.Node) string {
	return n.Utf8Text(l.src)
}

// add creates a node spanning n.
func (l *lowerer) add(n *sitter.Node, kind syntax.Kind, text string, flags syntax.Flags, a, b, c syntax.NodeID, list ...syntax.NodeID) syntax.NodeID {
	id := l.b.Add(kind, text, flags, a, b, c, list...)
	if n != nil {
		l.b.SetSpan(id, spanOf(n))
	}

	return id
}

// named returns the named children of n other than comments.
func named(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}

	out := make([]*sitter.Node, 0, n.NamedChildCount())

	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c != nil && c.Kind() != "comment" {
			out = append(out, c)
		}
	}

	return out
}

func firstNamed(n *sitter.Node) *sitter.Node {
	if kids := named(n); len(kids) > 0 {
		return kids[0]
	}

	return nil
}

// hasToken reports whether n has an anonymous child token tok, such as
// "static" or "async".
func hasToken(n *sitter.Node, tok string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c != nil && !c.IsNamed() && c.Kind() == tok {
			return true
		}
	}

	return false
}

func (l *lowerer) program(n *sitter.Node) syntax.NodeID {
	return l.add(n, syntax.KindProgram, "", 0, none, none, none, l.statements(n)...)
}

func (l *lowerer) statements(n *sitter.Node) []syntax.NodeID {
	var out []syntax.NodeID

	for _, c := range named(n) {
		if id := l.node(c); id.Valid() {
			out = append(out, id)
		}
	}

	return out
}

// node lowers any statement or expression.
func (l *lowerer) node(n *sitter.Node) syntax.NodeID {
	if n == nil {
		return none
	}

	switch n.Kind() {
	case "parenthesized_expression":
		return l.node(firstNamed(n))
	case "empty_statement", "comment", "hash_bang_line":
		return none
	}

	if id, ok := l.statement(n); ok {
		return id
	}

	return l.expression(n)
}

func (l *lowerer) statement(n *sitter.Node) (syntax.NodeID, bool) {
	switch n.Kind() {
	case "expression_statement":
		return l.add(n, syntax.KindExpressionStatement, "", 0, l.node(firstNamed(n)), none, none), true

	case "lexical_declaration":
		return l.declaration(n, l.text(n.ChildByFieldName("kind"))), true

	case "variable_declaration":
		return l.declaration(n, "var"), true

	case "function_declaration", "generator_function_declaration":
		return l.function(n, syntax.KindFunctionDeclaration), true

	case "class_declaration":
		return l.class(n, syntax.KindClassDeclaration), true

	case "statement_block":
		return l.add(n, syntax.KindBlockStatement, "", 0, none, none, none, l.statements(n)...), true

	case "return_statement":
		return l.add(n, syntax.KindReturnStatement, "", 0, l.node(firstNamed(n)), none, none), true

	case "if_statement":
		test := l.node(n.ChildByFieldName("condition"))
		consequent := l.node(n.ChildByFieldName("consequence"))

		alternate := none
		if alt := n.ChildByFieldName("alternative"); alt != nil {
			alternate = l.node(firstNamed(alt))
		}

		return l.add(n, syntax.KindIfStatement, "", 0, test, consequent, alternate), true

	case "import_statement":
		return l.importStatement(n), true

	case "export_statement":
		return l.exportStatement(n), true

	case "for_in_statement":
		return l.forIn(n), true

	case "catch_clause":
		return l.catchClause(n), true
	}

	return none, false
}

func (l *lowerer) declaration(n *sitter.Node, kind string) syntax.NodeID {
	var decls []syntax.NodeID

	for _, d := range named(n) {
		if d.Kind() != "variable_declarator" {
			continue
		}

		target := l.pattern(d.ChildByFieldName("name"), true)
		init := l.node(d.ChildByFieldName("value"))
		decls = append(decls, l.add(d, syntax.KindVariableDeclarator, "", 0, target, init, none))
	}

	return l.add(n, syntax.KindVariableDeclaration, kind, 0, none, none, none, decls...)
}

func (l *lowerer) importStatement(n *sitter.Node) syntax.NodeID {
	var specs []syntax.NodeID

	for _, c := range named(n) {
		if c.Kind() != "import_clause" {
			continue
		}

		for _, part := range named(c) {
			switch part.Kind() {
			case "identifier":
				specs = append(specs, l.add(part, syntax.KindImportDefaultSpecifier, "", 0,
					none, l.binding(part), none))

			case "namespace_import":
				specs = append(specs, l.add(part, syntax.KindImportNamespaceSpecifier, "", 0,
					none, l.binding(firstNamed(part)), none))

			case "named_imports":
				for _, s := range named(part) {
					if s.Kind() != "import_specifier" {
						continue
					}

					name := s.ChildByFieldName("name")
					local := s.ChildByFieldName("alias")
					if local == nil {
						local = name
					}

					specs = append(specs, l.add(s, syntax.KindImportSpecifier, "", 0,
						l.key(name), l.binding(local), none))
				}
			}
		}
	}

	source := l.node(n.ChildByFieldName("source"))

	return l.add(n, syntax.KindImportDeclaration, "", 0, source, none, none, specs...)
}

func (l *lowerer) exportStatement(n *sitter.Node) syntax.NodeID {
	kind := syntax.KindExportNamedDeclaration
	if hasToken(n, "default") {
		kind = syntax.KindExportDefaultDeclaration
	}

	if decl := n.ChildByFieldName("declaration"); decl != nil {
		return l.add(n, kind, "", 0, l.node(decl), none, none)
	}

	if value := n.ChildByFieldName("value"); value != nil {
		return l.add(n, kind, "", 0, l.node(value), none, none)
	}

	return l.opaque(n)
}

// forIn lowers `for (const x of xs)` so the loop variable is declared.
func (l *lowerer) forIn(n *sitter.Node) syntax.NodeID {
	left := n.ChildByFieldName("left")

	var target syntax.NodeID
	if kind := n.ChildByFieldName("kind"); kind != nil {
		decl := l.add(left, syntax.KindVariableDeclarator, "", 0, l.pattern(left, true), none, none)
		target = l.add(left, syntax.KindVariableDeclaration, l.text(kind), 0, none, none, none, decl)
	} else {
		target = l.pattern(left, false)
	}

	right := l.node(n.ChildByFieldName("right"))
	body := l.node(n.ChildByFieldName("body"))

	return l.add(n, syntax.KindOpaque, n.Kind(), syntax.FlagScope, none, none, none, target, right, body)
}

// catchClause declares the caught value as a block-scoped binding.
func (l *lowerer) catchClause(n *sitter.Node) syntax.NodeID {
	var kids []syntax.NodeID

	if param := n.ChildByFieldName("parameter"); param != nil {
		decl := l.add(param, syntax.KindVariableDeclarator, "", 0, l.pattern(param, true), none, none)
		kids = append(kids, l.add(param, syntax.KindVariableDeclaration, "let", 0, none, none, none, decl))
	}

	kids = append(kids, l.node(n.ChildByFieldName("body")))

	return l.add(n, syntax.KindOpaque, n.Kind(), syntax.FlagScope, none, none, none, kids...)
}

func (l *lowerer) expression(n *sitter.Node) syntax.NodeID {
	switch n.Kind() {
	case "identifier", "undefined", "shorthand_property_identifier":
		return l.add(n, syntax.KindIdentifierReference, l.text(n), 0, none, none, none)

	case "property_identifier", "statement_identifier":
		return l.add(n, syntax.KindIdentifierName, l.text(n), 0, none, none, none)

	case "private_property_identifier":
		return l.add(n, syntax.KindPrivateIdentifier, strings.TrimPrefix(l.text(n), "#"), 0, none, none, none)

	case "this":
		return l.add(n, syntax.KindThisExpression, "", 0, none, none, none)

	case "super":
		return l.add(n, syntax.KindSuper, "", 0, none, none, none)

	case "string":
		return l.add(n, syntax.KindStringLiteral, l.stringValue(n), 0, none, none, none)

	case "number":
		raw := l.text(n)
		if strings.HasSuffix(raw, "n") && !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
			return l.add(n, syntax.KindBigIntLiteral, raw, 0, none, none, none)
		}

		return l.add(n, syntax.KindNumericLiteral, raw, 0, none, none, none)

	case "true", "false":
		return l.add(n, syntax.KindBooleanLiteral, n.Kind(), 0, none, none, none)

	case "null":
		return l.add(n, syntax.KindNullLiteral, "", 0, none, none, none)

	case "regex":
		return l.add(n, syntax.KindRegExpLiteral, l.text(n.ChildByFieldName("pattern")), 0, none, none, none)

	case "template_string":
		return l.template(n)

	case "member_expression":
		var flags syntax.Flags
		if n.ChildByFieldName("optional_chain") != nil {
			flags |= syntax.FlagOptional
		}

		object := l.node(n.ChildByFieldName("object"))
		property := l.node(n.ChildByFieldName("property"))

		return l.add(n, syntax.KindMemberExpression, "", flags, object, property, none)

	case "subscript_expression":
		flags := syntax.FlagComputed
		if n.ChildByFieldName("optional_chain") != nil {
			flags |= syntax.FlagOptional
		}

		object := l.node(n.ChildByFieldName("object"))
		index := l.node(n.ChildByFieldName("index"))

		return l.add(n, syntax.KindMemberExpression, "", flags, object, index, none)

	case "call_expression":
		args := n.ChildByFieldName("arguments")
		if args == nil || args.Kind() != "arguments" {
			// Tagged template.
			return l.opaque(n)
		}

		callee := l.node(n.ChildByFieldName("function"))

		return l.add(n, syntax.KindCallExpression, "", 0, callee, none, none, l.arguments(args)...)

	case "new_expression":
		callee := l.node(n.ChildByFieldName("constructor"))

		return l.add(n, syntax.KindNewExpression, "", 0, callee, none, none, l.arguments(n.ChildByFieldName("arguments"))...)

	case "assignment_expression":
		left := l.pattern(n.ChildByFieldName("left"), false)
		right := l.node(n.ChildByFieldName("right"))

		return l.add(n, syntax.KindAssignmentExpression, "=", 0, left, right, none)

	case "augmented_assignment_expression":
		left := l.pattern(n.ChildByFieldName("left"), false)
		right := l.node(n.ChildByFieldName("right"))
		op := l.text(n.ChildByFieldName("operator"))

		return l.add(n, syntax.KindAssignmentExpression, op, 0, left, right, none)

	case "array":
		return l.add(n, syntax.KindArrayExpression, "", 0, none, none, none, l.elements(n, l.element)...)

	case "object":
		return l.object(n)

	case "function_expression", "function", "generator_function":
		return l.function(n, syntax.KindFunctionExpression)

	case "arrow_function":
		return l.arrow(n)

	case "class":
		return l.class(n, syntax.KindClassExpression)

	case "spread_element":
		return l.add(n, syntax.KindSpreadElement, "", 0, l.node(firstNamed(n)), none, none)
	}

	return l.opaque(n)
}

// opaque keeps the lowered named children of a construct outside the
// vocabulary.
func (l *lowerer) opaque(n *sitter.Node) syntax.NodeID {
	var kids []syntax.NodeID

	for _, c := range named(n) {
		if id := l.node(c); id.Valid() {
			kids = append(kids, id)
		}
	}

	var flags syntax.Flags
	if opensScope(n.Kind()) {
		flags = syntax.FlagScope
	}

	return l.add(n, syntax.KindOpaque, n.Kind(), flags, none, none, none, kids...)
}

// opensScope reports whether an opaque construct scopes the let, const and
// class declarations among its children.
func opensScope(kind string) bool {
	switch kind {
	case "for_statement", "switch_body":
		return true
	default:
		return false
	}
}

func (l *lowerer) arguments(n *sitter.Node) []syntax.NodeID {
	var out []syntax.NodeID

	for _, c := range named(n) {
		if id := l.node(c); id.Valid() {
			out = append(out, id)
		}
	}

	return out
}

// elements lowers the items of an array literal or pattern. The grammar has
// no node for a hole, so holes are found from consecutive commas.
func (l *lowerer) elements(n *sitter.Node, lower func(*sitter.Node) syntax.NodeID) []syntax.NodeID {
	var out []syntax.NodeID

	expectElement := true

	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || c.Kind() == "comment" {
			continue
		}

		switch {
		case c.Kind() == ",":
			if expectElement {
				out = append(out, l.add(c, syntax.KindElision, "", 0, none, none, none))
			}

			expectElement = true

		case c.IsNamed():
			out = append(out, lower(c))
			expectElement = false
		}
	}

	return out
}

func (l *lowerer) element(n *sitter.Node) syntax.NodeID {
	return l.node(n)
}

func (l *lowerer) object(n *sitter.Node) syntax.NodeID {
	var props []syntax.NodeID

	for _, c := range named(n) {
		switch c.Kind() {
		case "pair":
			key, flags := l.propertyKey(c.ChildByFieldName("key"))
			value := l.node(c.ChildByFieldName("value"))
			props = append(props, l.add(c, syntax.KindObjectProperty, "", flags, key, value, none))

		case "shorthand_property_identifier":
			name := l.add(c, syntax.KindIdentifierName, l.text(c), 0, none, none, none)
			ref := l.add(c, syntax.KindIdentifierReference, l.text(c), 0, none, none, none)
			props = append(props, l.add(c, syntax.KindObjectProperty, "", syntax.FlagShorthand, name, ref, none))

		case "method_definition":
			key, flags := l.propertyKey(c.ChildByFieldName("name"))

			text := ""
			switch {
			case hasToken(c, "get"):
				text = "get"
			case hasToken(c, "set"):
				text = "set"
			}

			fn := l.methodFunction(c)
			props = append(props, l.add(c, syntax.KindObjectProperty, text, flags|syntax.FlagMethod, key, fn, none))

		case "spread_element":
			props = append(props, l.node(c))

		default:
			props = append(props, l.opaque(c))
		}
	}

	return l.add(n, syntax.KindObjectExpression, "", 0, none, none, none, props...)
}

// propertyKey lowers a property name; computed keys set FlagComputed.
func (l *lowerer) propertyKey(n *sitter.Node) (syntax.NodeID, syntax.Flags) {
	if n == nil {
		return none, 0
	}

	if n.Kind() == "computed_property_name" {
		return l.node(firstNamed(n)), syntax.FlagComputed
	}

	return l.key(n), 0
}

// key lowers a non-computed property or export name.
func (l *lowerer) key(n *sitter.Node) syntax.NodeID {
	switch n.Kind() {
	case "string", "number", "private_property_identifier":
		return l.node(n)
	default:
		return l.add(n, syntax.KindIdentifierName, l.text(n), 0, none, none, none)
	}
}

func (l *lowerer) binding(n *sitter.Node) syntax.NodeID {
	if n == nil {
		return none
	}

	return l.add(n, syntax.KindBindingIdentifier, l.text(n), 0, none, none, none)
}

// pattern lowers a destructuring target. Declarations and parameters bind
// names; assignment targets reference existing ones.
func (l *lowerer) pattern(n *sitter.Node, declare bool) syntax.NodeID {
	if n == nil {
		return none
	}

	leaf := func(n *sitter.Node) syntax.NodeID {
		if declare {
			return l.binding(n)
		}

		return l.add(n, syntax.KindIdentifierReference, l.text(n), 0, none, none, none)
	}

	switch n.Kind() {
	case "identifier", "shorthand_property_identifier_pattern", "undefined":
		return leaf(n)

	case "parenthesized_expression":
		return l.pattern(firstNamed(n), declare)

	case "assignment_pattern":
		left := l.pattern(n.ChildByFieldName("left"), declare)
		right := l.node(n.ChildByFieldName("right"))

		return l.add(n, syntax.KindAssignmentPattern, "", 0, left, right, none)

	case "rest_pattern":
		return l.add(n, syntax.KindRestElement, "", 0, l.pattern(firstNamed(n), declare), none, none)

	case "array_pattern", "array":
		elems := l.elements(n, func(c *sitter.Node) syntax.NodeID { return l.pattern(c, declare) })

		return l.add(n, syntax.KindArrayPattern, "", 0, none, none, none, elems...)

	case "object_pattern", "object":
		return l.objectPattern(n, declare, leaf)

	case "spread_element":
		return l.add(n, syntax.KindRestElement, "", 0, l.pattern(firstNamed(n), declare), none, none)
	}

	return l.node(n)
}

func (l *lowerer) objectPattern(n *sitter.Node, declare bool, leaf func(*sitter.Node) syntax.NodeID) syntax.NodeID {
	var props []syntax.NodeID

	for _, c := range named(n) {
		switch c.Kind() {
		case "pair_pattern", "pair":
			key, flags := l.propertyKey(c.ChildByFieldName("key"))
			value := l.pattern(c.ChildByFieldName("value"), declare)
			props = append(props, l.add(c, syntax.KindBindingProperty, "", flags, key, value, none))

		case "shorthand_property_identifier_pattern", "shorthand_property_identifier":
			name := l.add(c, syntax.KindIdentifierName, l.text(c), 0, none, none, none)
			props = append(props, l.add(c, syntax.KindBindingProperty, "", syntax.FlagShorthand, name, leaf(c), none))

		case "object_assignment_pattern":
			left := c.ChildByFieldName("left")
			right := l.node(c.ChildByFieldName("right"))

			var key, value syntax.NodeID

			switch left.Kind() {
			case "shorthand_property_identifier_pattern", "identifier":
				key = l.add(left, syntax.KindIdentifierName, l.text(left), 0, none, none, none)
				value = leaf(left)
			default:
				key = none
				value = l.pattern(left, declare)
			}

			def := l.add(c, syntax.KindAssignmentPattern, "", 0, value, right, none)
			props = append(props, l.add(c, syntax.KindBindingProperty, "", syntax.FlagShorthand, key, def, none))

		case "rest_pattern", "spread_element":
			props = append(props, l.add(c, syntax.KindRestElement, "", 0, l.pattern(firstNamed(c), declare), none, none))
		}
	}

	return l.add(n, syntax.KindObjectPattern, "", 0, none, none, none, props...)
}

func (l *lowerer) functionFlags(n *sitter.Node) syntax.Flags {
	var flags syntax.Flags

	if hasToken(n, "async") {
		flags |= syntax.FlagAsync
	}

	if hasToken(n, "*") {
		flags |= syntax.FlagGenerator
	}

	return flags
}

func (l *lowerer) params(n *sitter.Node) []syntax.NodeID {
	var out []syntax.NodeID

	for _, c := range named(n) {
		if c.Kind() == "decorator" {
			continue
		}

		out = append(out, l.pattern(c, true))
	}

	return out
}

func (l *lowerer) function(n *sitter.Node, kind syntax.Kind) syntax.NodeID {
	id := l.binding(n.ChildByFieldName("name"))
	params := l.params(n.ChildByFieldName("parameters"))
	body := l.node(n.ChildByFieldName("body"))

	return l.add(n, kind, "", l.functionFlags(n), id, body, none, params...)
}

func (l *lowerer) arrow(n *sitter.Node) syntax.NodeID {
	var params []syntax.NodeID
	if p := n.ChildByFieldName("parameter"); p != nil {
		params = []syntax.NodeID{l.binding(p)}
	} else {
		params = l.params(n.ChildByFieldName("parameters"))
	}

	flags := l.functionFlags(n)

	bodyNode := n.ChildByFieldName("body")
	if bodyNode != nil && bodyNode.Kind() != "statement_block" {
		flags |= syntax.FlagExpressionBody
	}

	body := l.node(bodyNode)

	return l.add(n, syntax.KindArrowFunctionExpression, "", flags, none, body, none, params...)
}

// methodFunction lowers the parameters and body of a method into an
// anonymous function expression spanning the method.
func (l *lowerer) methodFunction(n *sitter.Node) syntax.NodeID {
	params := l.params(n.ChildByFieldName("parameters"))
	body := l.node(n.ChildByFieldName("body"))

	return l.add(n, syntax.KindFunctionExpression, "", l.functionFlags(n), none, body, none, params...)
}

func (l *lowerer) class(n *sitter.Node, kind syntax.Kind) syntax.NodeID {
	id := l.binding(n.ChildByFieldName("name"))

	super := none
	for _, c := range named(n) {
		if c.Kind() == "class_heritage" {
			super = l.node(firstNamed(c))
		}
	}

	bodyNode := n.ChildByFieldName("body")

	var members []syntax.NodeID

	for _, c := range named(bodyNode) {
		switch c.Kind() {
		case "method_definition":
			members = append(members, l.method(c))
		case "field_definition":
			members = append(members, l.field(c))
		case "decorator":
		default:
			members = append(members, l.opaque(c))
		}
	}

	body := l.add(bodyNode, syntax.KindClassBody, "", 0, none, none, none, members...)

	return l.add(n, kind, "", 0, id, super, body)
}

func isStatic(n *sitter.Node) bool {
	return hasToken(n, "static") || hasToken(n, "static get")
}

func (l *lowerer) method(n *sitter.Node) syntax.NodeID {
	key, flags := l.propertyKey(n.ChildByFieldName("name"))
	if isStatic(n) {
		flags |= syntax.FlagStatic
	}

	text := "method"
	switch {
	case hasToken(n, "get") || hasToken(n, "static get"):
		text = "get"
	case hasToken(n, "set"):
		text = "set"
	case flags&syntax.FlagComputed == 0 && l.text(n.ChildByFieldName("name")) == "constructor":
		text = "constructor"
	}

	fn := l.methodFunction(n)

	return l.add(n, syntax.KindMethodDefinition, text, flags, key, fn, none)
}

func (l *lowerer) field(n *sitter.Node) syntax.NodeID {
	key, flags := l.propertyKey(n.ChildByFieldName("property"))
	if isStatic(n) {
		flags |= syntax.FlagStatic
	}

	value := l.node(n.ChildByFieldName("value"))

	return l.add(n, syntax.KindPropertyDefinition, "", flags, key, value, none)
}

func (l *lowerer) template(n *sitter.Node) syntax.NodeID {
	var (
		cooked strings.Builder
		exprs  []syntax.NodeID
	)

	for _, c := range named(n) {
		switch c.Kind() {
		case "string_fragment":
			cooked.WriteString(l.text(c))
		case "escape_sequence":
			cooked.WriteString(unescape(l.text(c)))
		case "template_substitution":
			exprs = append(exprs, l.node(firstNamed(c)))
		}
	}

	text := cooked.String()
	if len(exprs) > 0 {
		text = ""
	}

	return l.add(n, syntax.KindTemplateLiteral, text, 0, none, none, none, exprs...)
}

// stringValue returns the cooked value of a string literal.
func (l *lowerer) stringValue(n *sitter.Node) string {
	var sb strings.Builder

	for _, c := range named(n) {
		switch c.Kind() {
		case "string_fragment":
			sb.WriteString(l.text(c))
		case "escape_sequence":
			sb.WriteString(unescape(l.text(c)))
		}
	}

	return sb.String()
}

func unescape(seq string) string {
	if s, err := strconv.Unquote(`"` + seq + `"`); err == nil {
		return s
	}

	// \' \` and line continuations have no Go equivalent.
	if strings.HasPrefix(seq, "\\\n") || strings.HasPrefix(seq, "\\\r") {
		return ""
	}

	return strings.TrimPrefix(seq, "\\")
}
