package jsfront

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"typeflow/internal/syntax"
)

// ParseError reports the first syntax error in a file.
type ParseError struct {
	Message string
	Span    syntax.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

const maxSnippet = 20

func syntaxError(root *sitter.Node, src []byte) *ParseError {
	if missing := firstNode(root, (*sitter.Node).IsMissing); missing != nil {
		return &ParseError{
			Message: fmt.Sprintf("syntax error: missing %s", missing.Kind()),
			Span:    spanOf(missing),
		}
	}

	bad := firstNode(root, (*sitter.Node).IsError)
	if bad == nil {
		return &ParseError{Message: "syntax error", Span: spanOf(root)}
	}

	snippet := []rune(bad.Utf8Text(src))
	if len(snippet) > maxSnippet {
		snippet = append(snippet[:maxSnippet], '…')
	}

	return &ParseError{
		Message: fmt.Sprintf("syntax error: unexpected %q", string(snippet)),
		Span:    spanOf(bad),
	}
}

// firstNode returns the earliest node in source order satisfying pred.
func firstNode(n *sitter.Node, pred func(*sitter.Node) bool) *sitter.Node {
	if n == nil {
		return nil
	}

	if pred(n) {
		return n
	}

	for i := uint(0); i < n.ChildCount(); i++ {
		if found := firstNode(n.Child(i), pred); found != nil {
			return found
		}
	}

	return nil
}

func spanOf(n *sitter.Node) syntax.Span {
	start, end := n.StartPosition(), n.EndPosition()

	return syntax.Span{
		Line:      int(start.Row) + 1,
		Column:    int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndColumn: int(end.Column) + 1,
	}
}
