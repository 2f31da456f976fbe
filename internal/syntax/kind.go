package syntax

import "fmt"

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the syntactic kind of a node.
type Kind int

const (
	KindInvalid Kind = iota // zero value, never stored in a built tree

	// Module level.
	KindProgram
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindExportNamedDeclaration
	KindExportDefaultDeclaration

	// Declarations.
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassDeclaration
	KindClassExpression
	KindClassBody
	KindMethodDefinition
	KindPropertyDefinition
	KindTSParameterProperty

	// Statements.
	KindBlockStatement
	KindExpressionStatement
	KindReturnStatement
	KindIfStatement

	// Names.
	KindIdentifierReference
	KindBindingIdentifier
	KindIdentifierName
	KindPrivateIdentifier
	KindThisExpression
	KindSuper

	// Literals.
	KindStringLiteral
	KindNumericLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindBigIntLiteral
	KindDecimalLiteral
	KindRegExpLiteral
	KindTemplateLiteral

	// Expressions.
	KindMemberExpression
	KindCallExpression
	KindNewExpression
	KindAssignmentExpression
	KindArrayExpression
	KindObjectExpression
	KindObjectProperty
	KindSpreadElement

	// Patterns.
	KindArrayPattern
	KindObjectPattern
	KindBindingProperty
	KindRestElement
	KindAssignmentPattern
	KindElision

	// KindOpaque stands for any construct outside the vocabulary above. Its
	// children are kept so that traversal still reaches nested nodes.
	KindOpaque
)

// IsFunction reports whether k is a function-like node.
func (k Kind) IsFunction() bool {
	switch k {
	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunctionExpression:
		return true
	default:
		return false
	}
}

// IsClass reports whether k is a class declaration or expression.
func (k Kind) IsClass() bool {
	return k == KindClassDeclaration || k == KindClassExpression
}

// IsLiteral reports whether k is a literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindStringLiteral, KindNumericLiteral, KindBooleanLiteral, KindNullLiteral,
		KindBigIntLiteral, KindDecimalLiteral, KindRegExpLiteral, KindTemplateLiteral:
		return true
	default:
		return false
	}
}

// IsArrayLike reports whether k is an array literal or array pattern.
func (k Kind) IsArrayLike() bool {
	return k == KindArrayExpression || k == KindArrayPattern
}

// IsObjectLike reports whether k is an object literal or object pattern.
func (k Kind) IsObjectLike() bool {
	return k == KindObjectExpression || k == KindObjectPattern
}

// IsMember reports whether k declares a keyed member of a class body or object literal.
func (k Kind) IsMember() bool {
	switch k {
	case KindObjectProperty, KindMethodDefinition, KindPropertyDefinition:
		return true
	default:
		return false
	}
}

func unreachableKind(k Kind) string {
	return fmt.Sprintf("syntax: unreachable: unhandled node kind %s", k)
}

// Flags holds boolean node attributes.
type Flags uint16

const (
	FlagComputed Flags = 1 << iota
	FlagOptional
	FlagShorthand
	FlagMethod
	FlagStatic
	FlagExpressionBody
	FlagAsync
	FlagGenerator
	// FlagScope marks an Opaque construct that opens a block scope of its
	// own: loops with a declaration head, catch clauses, switch bodies.
	FlagScope
)
