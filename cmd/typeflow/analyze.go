package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"typeflow/internal/diagnostic"
	"typeflow/internal/infer"
	"typeflow/internal/jsfront"
	"typeflow/internal/match"
	"typeflow/internal/resolve"
	"typeflow/internal/scope"
	"typeflow/internal/seed"
	"typeflow/internal/syntax"
)

// fileResult is the outcome of analyzing one file.
type fileResult struct {
	path  string
	lines []outputLine
	diags diagnostic.Diagnostics
	typed *infer.TypedNodeSet
}

// outputLine is one typed node.
type outputLine struct {
	span  syntax.Span
	node  syntax.NodeID
	kind  syntax.Kind
	label string
	types []string
}

const (
	ansiReset = "\x1b[0m"
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiGreen = "\x1b[32m"
)

func (l outputLine) render(path string, color bool) string {
	pos := fmt.Sprintf("%s:%d:%d", path, l.span.Line, l.span.Column)
	kind := l.kind.String()
	types := strings.Join(l.types, " | ")

	if color {
		pos = ansiDim + pos + ansiReset
		kind = ansiCyan + kind + ansiReset
		types = ansiGreen + types + ansiReset
	}

	if l.label == "" {
		return fmt.Sprintf("%s %s: %s", pos, kind, types)
	}

	return fmt.Sprintf("%s %s %s: %s", pos, kind, l.label, types)
}

// analyzeFile runs one isolated inference pass. Problems with the file are
// reported as diagnostics; only cancellation is returned as an error.
func analyzeFile(ctx context.Context, path string, reg seed.Registry, modules []string, config infer.Config) (fileResult, error) {
	res := fileResult{path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.diags.AddError(diagnostic.CodeReadError, err.Error(), path, syntax.Span{})
		return res, nil
	}

	tree, err := jsfront.Parse(src)
	if err != nil {
		var perr *jsfront.ParseError
		if errors.As(err, &perr) {
			res.diags.AddError(diagnostic.CodeParseError, perr.Message, path, perr.Span)
		} else {
			res.diags.AddError(diagnostic.CodeParseError, err.Error(), path, syntax.Span{})
		}

		return res, nil
	}

	for _, imp := range seed.Unregistered(tree, reg) {
		source := tree.Text(tree.Source(imp))
		if isRelative(source) {
			continue
		}

		res.diags.AddWarning(diagnostic.CodeUnknownModule,
			fmt.Sprintf("no registry entry for module %q", source), path, tree.Span(imp),
			match.Suggest(source, modules, match.DefaultMinScore, match.DefaultMaxSuggestions)...)
	}

	scopes := scope.Analyze(tree)
	seeds := seed.Extract(tree, scopes, reg)

	config.Logger = config.Logger.With().Str("file", path).Logger()

	typed, err := infer.NewEngine(tree, resolve.New(tree, scopes), config).Run(ctx, seeds)
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}

	if typed.Truncated {
		res.diags.AddInfo(diagnostic.CodeStepBudget,
			fmt.Sprintf("stopped after %d steps, results are partial", typed.Stats.Steps), path, syntax.Span{})
	}

	res.typed = typed
	res.lines = outputLines(tree, typed)

	return res, nil
}

func isRelative(source string) bool {
	return strings.HasPrefix(source, "./") || strings.HasPrefix(source, "../") || strings.HasPrefix(source, "/")
}

// outputLines lists the typed nodes by source position.
func outputLines(tree *syntax.Tree, typed *infer.TypedNodeSet) []outputLine {
	nodes := typed.Nodes()
	lines := make([]outputLine, 0, len(nodes))

	for _, id := range nodes {
		var types []string
		for _, t := range typed.Types(id) {
			types = append(types, t.String())
		}

		sort.Strings(types)

		lines = append(lines, outputLine{
			span:  tree.Span(id),
			node:  id,
			kind:  tree.Kind(id),
			label: label(tree, id),
			types: types,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i].span, lines[j].span
		if a.Line != b.Line {
			return a.Line < b.Line
		}

		if a.Column != b.Column {
			return a.Column < b.Column
		}

		return lines[i].node < lines[j].node
	})

	return lines
}

// label renders a short source-like name for a node, or "" when it has none.
func label(tree *syntax.Tree, id syntax.NodeID) string {
	switch tree.Kind(id) {
	case syntax.KindIdentifierReference, syntax.KindBindingIdentifier:
		return tree.Text(id)
	case syntax.KindThisExpression:
		return "this"
	case syntax.KindSuper:
		return "super"
	case syntax.KindMemberExpression:
		object := label(tree, tree.Object(id))
		if object == "" {
			object = "…"
		}

		if key, ok := tree.StaticKey(id); ok && !tree.Is(id, syntax.FlagComputed) {
			return object + "." + key
		}

		return object + "[…]"
	case syntax.KindCallExpression:
		if callee := label(tree, tree.Callee(id)); callee != "" {
			return callee + "()"
		}
	case syntax.KindNewExpression:
		if callee := label(tree, tree.Callee(id)); callee != "" {
			return "new " + callee + "()"
		}
	case syntax.KindImportDeclaration:
		return fmt.Sprintf("%q", tree.Text(tree.Source(id)))
	case syntax.KindFunctionDeclaration, syntax.KindClassDeclaration:
		return tree.Text(tree.ID(id))
	}

	return ""
}

// dumpView is the -dump representation of a file's typed nodes.
func dumpView(res fileResult) map[string][]string {
	out := make(map[string][]string, len(res.lines))

	for _, l := range res.lines {
		key := fmt.Sprintf("%s:%d:%d#%d %s", res.path, l.span.Line, l.span.Column, l.node, l.kind)
		out[key] = l.types
	}

	return out
}
