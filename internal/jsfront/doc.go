// Package jsfront parses JavaScript with tree-sitter and lowers the concrete
// syntax tree into a syntax.Tree.
//
// Parentheses are dropped, array holes become Elision nodes and constructs
// outside the syntax vocabulary become Opaque nodes that keep their
// children, so identifiers nested in loops, operators or JSX are still
// reached by scope analysis. Every lowered node carries its source span.
//
// Key types:
//   - Parser: a reusable tree-sitter parser, one per goroutine
//   - ParseError: the first syntax error of a file with its position
package jsfront
