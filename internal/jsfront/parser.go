package jsfront

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"typeflow/internal/syntax"
)

// Parser wraps a tree-sitter parser loaded with the JavaScript grammar.
// It is not safe for concurrent use.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a Parser. Call Close when done.
func NewParser() (*Parser, error) {
	p := sitter.NewParser()
	if err := p.SetLanguage(sitter.NewLanguage(javascript.Language())); err != nil {
		p.Close()
		return nil, fmt.Errorf("jsfront: load grammar: %w", err)
	}

	return &Parser{parser: p}, nil
}

// Close releases the underlying parser.
func (p *Parser) Close() {
	if p == nil || p.parser == nil {
		return
	}

	p.parser.Close()
	p.parser = nil
}

// Parse lowers src into a syntax tree. A file with syntax errors yields a
// *ParseError and no tree.
func (p *Parser) Parse(src []byte) (*syntax.Tree, error) {
	if p == nil || p.parser == nil {
		return nil, errors.New("jsfront: parser is closed")
	}

	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, errors.New("jsfront: parse canceled")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.Kind() != "program" {
		return nil, errors.New("jsfront: unexpected root node")
	}

	if root.HasError() {
		return nil, syntaxError(root, src)
	}

	l := &lowerer{src: src, b: syntax.NewBuilder()}

	return l.b.Build(l.program(root)), nil
}

// Parse parses src with a throwaway Parser.
func Parse(src []byte) (*syntax.Tree, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	defer p.Close()

	return p.Parse(src)
}
