package jsfront

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeflow/internal/infer"
	"typeflow/internal/resolve"
	"typeflow/internal/scope"
	"typeflow/internal/seed"
	"typeflow/internal/shape"
	"typeflow/internal/syntax"
)

func mustParse(t *testing.T, src string) *syntax.Tree {
	t.Helper()

	tree, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Equal(t, syntax.KindProgram, tree.Kind(tree.Root()))

	return tree
}

// find returns the nodes of kind k in pre-order.
func find(tree *syntax.Tree, k syntax.Kind) []syntax.NodeID {
	var out []syntax.NodeID

	tree.Inspect(tree.Root(), func(id syntax.NodeID) bool {
		if tree.Kind(id) == k {
			out = append(out, id)
		}

		return true
	})

	return out
}

func texts(tree *syntax.Tree, ids []syntax.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = tree.Text(id)
	}

	return out
}

func TestParseDeclarations(t *testing.T) {
	tree := mustParse(t, "const a = api, [b, , ...c] = xs;\nlet { k: d = 1, e, ...f } = o;\nvar g;\n")

	decls := find(tree, syntax.KindVariableDeclaration)
	require.Len(t, decls, 3)
	assert.Equal(t, []string{"const", "let", "var"}, texts(tree, decls))

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"},
		texts(tree, find(tree, syntax.KindBindingIdentifier)))

	arrayPat := find(tree, syntax.KindArrayPattern)
	require.Len(t, arrayPat, 1)

	elems := tree.Elements(arrayPat[0])
	require.Len(t, elems, 3)
	assert.Equal(t, syntax.KindBindingIdentifier, tree.Kind(elems[0]))
	assert.Equal(t, syntax.KindElision, tree.Kind(elems[1]))
	assert.Equal(t, syntax.KindRestElement, tree.Kind(elems[2]))

	objPat := find(tree, syntax.KindObjectPattern)
	require.Len(t, objPat, 1)

	props := tree.Properties(objPat[0])
	require.Len(t, props, 3)

	key, ok := tree.StaticKey(props[0])
	require.True(t, ok)
	assert.Equal(t, "k", key)
	assert.Equal(t, syntax.KindAssignmentPattern, tree.Kind(tree.Value(props[0])))
	assert.True(t, tree.Is(props[1], syntax.FlagShorthand))
	assert.Equal(t, syntax.KindRestElement, tree.Kind(props[2]))
}

func TestParseArrayHoles(t *testing.T) {
	tests := []struct {
		src  string
		want []syntax.Kind
	}{
		{"[a, , b];", []syntax.Kind{syntax.KindIdentifierReference, syntax.KindElision, syntax.KindIdentifierReference}},
		{"[, a];", []syntax.Kind{syntax.KindElision, syntax.KindIdentifierReference}},
		{"[a, ];", []syntax.Kind{syntax.KindIdentifierReference}},
		{"[, ];", []syntax.Kind{syntax.KindElision}},
		{"[...a, b];", []syntax.Kind{syntax.KindSpreadElement, syntax.KindIdentifierReference}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tree := mustParse(t, tt.src)

			arrays := find(tree, syntax.KindArrayExpression)
			require.Len(t, arrays, 1)

			var kinds []syntax.Kind
			for _, el := range tree.Elements(arrays[0]) {
				kinds = append(kinds, tree.Kind(el))
			}

			assert.Equal(t, tt.want, kinds)
		})
	}
}

func TestParseStripsParentheses(t *testing.T) {
	tree := mustParse(t, "((a)).b;")

	members := find(tree, syntax.KindMemberExpression)
	require.Len(t, members, 1)

	object := tree.Object(members[0])
	assert.Equal(t, syntax.KindIdentifierReference, tree.Kind(object))
	assert.Equal(t, "a", tree.Text(object))
}

func TestParseMembers(t *testing.T) {
	tree := mustParse(t, "a.b; a?.c; a['d']; a[0]; a[k]; this.#p;")

	var keys []string

	for _, m := range find(tree, syntax.KindMemberExpression) {
		key, ok := tree.StaticKey(m)
		if !ok {
			key = "<computed>"
		}

		keys = append(keys, key)
	}

	assert.Equal(t, []string{"b", "c", "d", "0", "<computed>", "#p"}, keys)

	members := find(tree, syntax.KindMemberExpression)
	assert.True(t, tree.Is(members[1], syntax.FlagOptional))
	assert.True(t, tree.Is(members[2], syntax.FlagComputed))
}

func TestParseFunctions(t *testing.T) {
	tree := mustParse(t, `
function f(a, { b } = {}, ...rest) { return a; }
const g = async x => x;
const h = function named() {};
`)

	fns := find(tree, syntax.KindFunctionDeclaration)
	require.Len(t, fns, 1)
	assert.Equal(t, "f", tree.Text(tree.ID(fns[0])))

	params := tree.Params(fns[0])
	require.Len(t, params, 3)
	assert.Equal(t, syntax.KindBindingIdentifier, tree.Kind(params[0]))
	assert.Equal(t, syntax.KindAssignmentPattern, tree.Kind(params[1]))
	assert.Equal(t, syntax.KindRestElement, tree.Kind(params[2]))

	arrows := find(tree, syntax.KindArrowFunctionExpression)
	require.Len(t, arrows, 1)
	assert.True(t, tree.Is(arrows[0], syntax.FlagExpressionBody))
	assert.True(t, tree.Is(arrows[0], syntax.FlagAsync))
	assert.Equal(t, syntax.KindIdentifierReference, tree.Kind(tree.Body(arrows[0])))

	exprs := find(tree, syntax.KindFunctionExpression)
	require.Len(t, exprs, 1)
	assert.Equal(t, "named", tree.Text(tree.ID(exprs[0])))
}

func TestParseClass(t *testing.T) {
	tree := mustParse(t, `
class C extends Base {
  static count = 0;
  field;
  constructor(x) { super(x); }
  get size() { return 1; }
  run() { return this.field; }
}
`)

	classes := find(tree, syntax.KindClassDeclaration)
	require.Len(t, classes, 1)
	assert.Equal(t, "Base", tree.Text(tree.SuperClass(classes[0])))

	members := tree.Statements(tree.Body(classes[0]))
	require.Len(t, members, 5)

	assert.Equal(t, syntax.KindPropertyDefinition, tree.Kind(members[0]))
	assert.True(t, tree.Is(members[0], syntax.FlagStatic))
	assert.Equal(t, syntax.KindPropertyDefinition, tree.Kind(members[1]))
	assert.False(t, tree.Value(members[1]).Valid())

	var kinds []string
	for _, m := range members[2:] {
		kinds = append(kinds, tree.Text(m))
	}

	assert.Equal(t, []string{"constructor", "get", "method"}, kinds)
	assert.Len(t, find(tree, syntax.KindSuper), 1)
}

func TestParseObjectLiteral(t *testing.T) {
	tree := mustParse(t, "const o = { a: 1, b, [k]: 2, 'c': 3, m() {}, get g() { return 1; }, ...rest };")

	objects := find(tree, syntax.KindObjectExpression)
	require.Len(t, objects, 1)

	props := tree.Properties(objects[0])
	require.Len(t, props, 7)

	assert.True(t, tree.Is(props[1], syntax.FlagShorthand))
	assert.True(t, tree.Is(props[2], syntax.FlagComputed))

	key, ok := tree.StaticKey(props[3])
	require.True(t, ok)
	assert.Equal(t, "c", key)

	assert.True(t, tree.Is(props[4], syntax.FlagMethod))
	assert.Equal(t, "", tree.Text(props[4]))
	assert.Equal(t, "get", tree.Text(props[5]))
	assert.Equal(t, syntax.KindSpreadElement, tree.Kind(props[6]))
}

func TestParseImports(t *testing.T) {
	tree := mustParse(t, `import def, { Foo as Bar, baz } from "pkg";
import * as ns from './local.js';
import "side-effect";
`)

	imports := find(tree, syntax.KindImportDeclaration)
	require.Len(t, imports, 3)

	assert.Equal(t, "pkg", tree.Text(tree.Source(imports[0])))
	assert.Equal(t, "./local.js", tree.Text(tree.Source(imports[1])))
	assert.Empty(t, tree.Specifiers(imports[2]))

	specs := tree.Specifiers(imports[0])
	require.Len(t, specs, 3)

	var names []string
	for _, s := range specs {
		name, ok := tree.ImportedName(s)
		require.True(t, ok)
		names = append(names, name+"->"+tree.Text(tree.Local(s)))
	}

	assert.Equal(t, []string{"default->def", "Foo->Bar", "baz->baz"}, names)

	ns := tree.Specifiers(imports[1])
	require.Len(t, ns, 1)
	assert.Equal(t, syntax.KindImportNamespaceSpecifier, tree.Kind(ns[0]))
}

func TestParseAssignmentTargetsAreReferences(t *testing.T) {
	tree := mustParse(t, "let a, b; [a, b] = pair; ({ a } = o); a += 1;")

	assigns := find(tree, syntax.KindAssignmentExpression)
	require.Len(t, assigns, 3)
	assert.Equal(t, []string{"=", "=", "+="}, texts(tree, assigns))

	assert.Equal(t, syntax.KindArrayPattern, tree.Kind(tree.Left(assigns[0])))
	for _, el := range tree.Elements(tree.Left(assigns[0])) {
		assert.Equal(t, syntax.KindIdentifierReference, tree.Kind(el))
	}

	assert.Equal(t, syntax.KindObjectPattern, tree.Kind(tree.Left(assigns[1])))
	assert.Equal(t, []string{"a", "b"}, texts(tree, find(tree, syntax.KindBindingIdentifier)))
}

func TestParseOpaqueKeepsChildren(t *testing.T) {
	tree := mustParse(t, "for (const item of list) { use(item + 1); }\ntry { x; } catch (err) { err; }")

	opaque := find(tree, syntax.KindOpaque)
	require.NotEmpty(t, opaque)
	assert.Equal(t, "for_in_statement", tree.Text(opaque[0]))
	assert.True(t, tree.Is(opaque[0], syntax.FlagScope))

	assert.Equal(t, []string{"item", "err"}, texts(tree, find(tree, syntax.KindBindingIdentifier)))

	scopes := scope.Analyze(tree)

	for _, ref := range find(tree, syntax.KindIdentifierReference) {
		switch tree.Text(ref) {
		case "item", "err":
			assert.NotNil(t, scopes.BindingOf(ref), "%s should resolve", tree.Text(ref))
		}
	}
}

func TestParseLoopAndCatchBindingsShadow(t *testing.T) {
	api := shape.Object([]shape.Field{
		{Key: "setDatasource", Type: shape.Function(shape.Tuple([]shape.Type{shape.Any()}, nil), shape.Undefined)},
	}, nil)

	tests := []struct {
		name string
		src  string
	}{
		{"for of", "const x = api; for (const x of [1, 2]) { x.setDatasource; }"},
		{"for in", "const x = api; for (let x in obj) { x.setDatasource; }"},
		{"for init", "const x = api; for (let x = 0; x < 2; x++) { x.setDatasource; }"},
		{"catch", "let x = api; try { f(); } catch (x) { x.setDatasource; }"},
		{"switch", "const x = api; switch (k) { case 1: let x = 0; x.setDatasource; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.src)
			scopes := scope.Analyze(tree)
			seeds := seed.Extract(tree, scopes, seed.Registry{Globals: map[string]shape.Type{"api": api}})
			require.Len(t, seeds, 1)

			out := infer.Infer(tree, resolve.New(tree, scopes), seeds)

			decls := find(tree, syntax.KindBindingIdentifier)
			require.Len(t, decls, 2)
			assert.True(t, out.Has(decls[0], api))
			assert.Empty(t, out.Types(decls[1]))

			for _, m := range find(tree, syntax.KindMemberExpression) {
				assert.Empty(t, out.Types(m))
			}

			for _, lit := range find(tree, syntax.KindNumericLiteral) {
				assert.Empty(t, out.Types(lit))
			}
		})
	}
}

func TestParseLiterals(t *testing.T) {
	tree := mustParse(t, "f('a\\'b', \"c\\n\", 1_000, 10n, true, null, /re/g, `t`, `x${y}`);")

	calls := find(tree, syntax.KindCallExpression)
	require.Len(t, calls, 1)

	args := tree.Arguments(calls[0])
	require.Len(t, args, 9)

	assert.Equal(t, "a'b", tree.Text(args[0]))
	assert.Equal(t, "c\n", tree.Text(args[1]))
	assert.Equal(t, syntax.KindNumericLiteral, tree.Kind(args[2]))
	assert.Equal(t, syntax.KindBigIntLiteral, tree.Kind(args[3]))
	assert.Equal(t, "true", tree.Text(args[4]))
	assert.Equal(t, syntax.KindNullLiteral, tree.Kind(args[5]))
	assert.Equal(t, "re", tree.Text(args[6]))
	assert.Equal(t, "t", tree.Text(args[7]))
	assert.Len(t, tree.Expressions(args[8]), 1)
}

func TestParseSpans(t *testing.T) {
	tree := mustParse(t, "const a = 1;\n  foo.bar;\n")

	members := find(tree, syntax.KindMemberExpression)
	require.Len(t, members, 1)

	span := tree.Span(members[0])
	assert.Equal(t, 2, span.Line)
	assert.Equal(t, 3, span.Column)
	assert.Equal(t, 2, span.EndLine)
	assert.Equal(t, 10, span.EndColumn)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("const a = 1;\nconst = ;\n"))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Span.Line)
	assert.Contains(t, perr.Error(), "syntax error")
}

func TestParserReuse(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)
	defer p.Close()

	for _, src := range []string{"a;", "b.c;", "function d() {}"} {
		_, err := p.Parse([]byte(src))
		require.NoError(t, err)
	}

	p.Close()

	_, err = p.Parse([]byte("a;"))
	assert.Error(t, err)
}

func TestParseEndToEnd(t *testing.T) {
	tree := mustParse(t, `
import { connect } from "db";
const a = api;
a.setDatasource(connect("url"));
`)

	reg := seed.Registry{
		Modules: map[string]shape.Type{
			"db": shape.Object([]shape.Field{
				{Key: "connect", Type: shape.Function(shape.Tuple([]shape.Type{shape.String}, nil), shape.Number)},
			}, nil),
		},
		Globals: map[string]shape.Type{
			"api": shape.Object([]shape.Field{
				{Key: "setDatasource", Type: shape.Function(shape.Tuple([]shape.Type{shape.Number}, nil), shape.Undefined)},
			}, nil),
		},
	}

	scopes := scope.Analyze(tree)
	seeds := seed.Extract(tree, scopes, reg)
	require.Len(t, seeds, 2)

	out := infer.Infer(tree, resolve.New(tree, scopes), seeds)

	calls := find(tree, syntax.KindCallExpression)
	require.Len(t, calls, 2)

	// Pre-order visits the outer call first.
	outer, inner := calls[0], calls[1]
	assert.True(t, out.Has(outer, shape.Undefined))
	assert.True(t, out.Has(inner, shape.Number))

	args := tree.Arguments(inner)
	require.Len(t, args, 1)
	assert.True(t, out.Has(args[0], shape.String))
}
