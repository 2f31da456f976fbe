package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeflow/internal/syntax"
)

func TestAnalyzeLocalBinding(t *testing.T) {
	// const a = api; a.m(); a = other;
	b := syntax.NewBuilder()
	api := b.Ref("api")
	aDecl := b.Binding("a")
	declarator := b.Declarator(aDecl, api)
	aRead := b.Ref("a")
	aWrite := b.Ref("a")
	other := b.Ref("other")
	tree := b.Build(b.Program(
		b.Const(declarator),
		b.ExprStmt(b.Call(b.Member(aRead, "m"))),
		b.ExprStmt(b.Assign(aWrite, other)),
	))

	s := Analyze(tree)

	binding := s.BindingOf(aDecl)
	require.NotNil(t, binding)
	assert.Equal(t, "a", binding.Name)
	assert.Equal(t, BindingLocal, binding.Kind)
	assert.Equal(t, declarator, binding.Declaration)
	assert.Equal(t, []syntax.NodeID{aRead}, binding.References)
	assert.Equal(t, []syntax.NodeID{aWrite}, binding.Writes)

	assert.Same(t, binding, s.BindingOf(aRead))
	assert.Same(t, binding, s.BindingOf(aWrite))

	assert.Nil(t, s.BindingOf(api))
	assert.Equal(t, []syntax.NodeID{api, other}, s.Unresolved())
}

func TestAnalyzeShadowing(t *testing.T) {
	// const api = 1; function f(api) { api; } api;
	b := syntax.NewBuilder()
	outerDecl := b.Binding("api")
	param := b.Binding("api")
	inner := b.Ref("api")
	outer := b.Ref("api")
	fn := b.FuncDecl("f", []syntax.NodeID{param}, b.Block(b.ExprStmt(inner)))
	tree := b.Build(b.Program(
		b.Const(b.Declarator(outerDecl, b.Num("1"))),
		fn,
		b.ExprStmt(outer),
	))

	s := Analyze(tree)

	paramBinding := s.BindingOf(param)
	require.NotNil(t, paramBinding)
	assert.Equal(t, BindingParameter, paramBinding.Kind)
	assert.Equal(t, fn, paramBinding.Declaration)
	assert.Same(t, paramBinding, s.BindingOf(inner))

	outerBinding := s.BindingOf(outerDecl)
	require.NotNil(t, outerBinding)
	assert.Same(t, outerBinding, s.BindingOf(outer))
	assert.NotSame(t, outerBinding, paramBinding)

	fBinding := s.BindingOf(tree.ID(fn))
	require.NotNil(t, fBinding)
	assert.Equal(t, BindingHoistedFunction, fBinding.Kind)
	assert.True(t, s.HasBinding(outer, "f"))
	assert.False(t, s.HasBinding(outer, "nope"))
}

func TestAnalyzeHoisting(t *testing.T) {
	// g(); x; { var x = 1; let y = 2; } y; function g() {}
	b := syntax.NewBuilder()
	call := b.Ref("g")
	xRead := b.Ref("x")
	yRead := b.Ref("y")
	xDecl := b.Binding("x")
	yDecl := b.Binding("y")
	tree := b.Build(b.Program(
		b.ExprStmt(b.Call(call)),
		b.ExprStmt(xRead),
		b.Block(
			b.Var("var", b.Declarator(xDecl, b.Num("1"))),
			b.Let(b.Declarator(yDecl, b.Num("2"))),
		),
		b.ExprStmt(yRead),
		b.FuncDecl("g", nil, b.Block()),
	))

	s := Analyze(tree)

	require.NotNil(t, s.BindingOf(call))
	assert.Equal(t, BindingHoistedFunction, s.BindingOf(call).Kind)
	assert.Same(t, s.BindingOf(xDecl), s.BindingOf(xRead))
	assert.Nil(t, s.BindingOf(yRead), "let is block scoped")
	assert.Equal(t, []syntax.NodeID{yRead}, s.Unresolved())
}

func TestAnalyzeImportsAndPatterns(t *testing.T) {
	// import D, { Foo as Bar } from "pkg"; const { a, b: [c, ...d], e = 1 } = x; Bar; c;
	b := syntax.NewBuilder()
	named := b.ImportNamed("Foo", "Bar")
	def := b.ImportDefault("D")
	imp := b.Import("pkg", def, named)
	cLeaf := b.Binding("c")
	pattern := b.ObjectPat(
		b.PatShorthand("a"),
		b.PatProp("b", b.ArrayPat(cLeaf, b.Rest(b.Binding("d")))),
		b.PatProp("e", b.Default(b.Binding("e"), b.Num("1"))),
	)
	declarator := b.Declarator(pattern, b.Ref("x"))
	barRef := b.Ref("Bar")
	cRef := b.Ref("c")
	tree := b.Build(b.Program(imp, b.Const(declarator), b.ExprStmt(barRef), b.ExprStmt(cRef)))

	s := Analyze(tree)

	bar := s.BindingOf(barRef)
	require.NotNil(t, bar)
	assert.Equal(t, BindingModuleImport, bar.Kind)
	assert.Equal(t, named, bar.Declaration)

	c := s.BindingOf(cRef)
	require.NotNil(t, c)
	assert.Equal(t, declarator, c.Declaration)
	assert.Same(t, c, s.BindingOf(cLeaf))

	names := make([]string, 0)
	for _, binding := range s.Bindings() {
		names = append(names, binding.Name)
	}

	assert.ElementsMatch(t, []string{"D", "Bar", "a", "c", "d", "e"}, names)
}

func TestAnalyzeDestructuringAssignmentWrites(t *testing.T) {
	// let a, b; [a, { k: b }] = src;
	b := syntax.NewBuilder()
	aWrite := b.Ref("a")
	bWrite := b.Ref("b")
	tree := b.Build(b.Program(
		b.Let(b.Declarator(b.Binding("a"), syntax.NoNode), b.Declarator(b.Binding("b"), syntax.NoNode)),
		b.ExprStmt(b.Assign(b.ArrayPat(aWrite, b.ObjectPat(b.PatProp("k", bWrite))), b.Ref("src"))),
	))

	s := Analyze(tree)

	assert.True(t, IsWriteTarget(tree, aWrite))
	assert.True(t, IsWriteTarget(tree, bWrite))
	assert.Equal(t, []syntax.NodeID{aWrite}, s.BindingOf(aWrite).Writes)
	assert.Equal(t, []syntax.NodeID{bWrite}, s.BindingOf(bWrite).Writes)
}

func TestAnalyzeRedeclarationIsWrite(t *testing.T) {
	b := syntax.NewBuilder()
	first := b.Binding("v")
	second := b.Binding("v")
	tree := b.Build(b.Program(
		b.Var("var", b.Declarator(first, b.Num("1"))),
		b.Var("var", b.Declarator(second, b.Num("2"))),
	))

	s := Analyze(tree)

	require.NotNil(t, s.BindingOf(first))
	assert.Same(t, s.BindingOf(first), s.BindingOf(second))
	assert.Equal(t, []syntax.NodeID{second}, s.BindingOf(first).Writes)
}

func TestAnalyzeScopedConstructsShadow(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *syntax.Builder, decl, ref syntax.NodeID) syntax.NodeID
	}{
		{
			// for (const x of xs) { x; }
			name:  "for of",
			build: func(b *syntax.Builder, decl, ref syntax.NodeID) syntax.NodeID {
				return b.Scoped("for_in_statement",
					b.Const(b.Declarator(decl, syntax.NoNode)), b.Ref("xs"), b.Block(b.ExprStmt(ref)))
			},
		},
		{
			// for (let x = 0; ; ) { x; }
			name:  "for init",
			build: func(b *syntax.Builder, decl, ref syntax.NodeID) syntax.NodeID {
				return b.Scoped("for_statement",
					b.Let(b.Declarator(decl, b.Num("0"))), b.Block(b.ExprStmt(ref)))
			},
		},
		{
			// catch (x) { x; }
			name:  "catch",
			build: func(b *syntax.Builder, decl, ref syntax.NodeID) syntax.NodeID {
				return b.Scoped("catch_clause",
					b.Let(b.Declarator(decl, syntax.NoNode)), b.Block(b.ExprStmt(ref)))
			},
		},
		{
			// switch (k) { case 1: let x; x; }
			name:  "switch body",
			build: func(b *syntax.Builder, decl, ref syntax.NodeID) syntax.NodeID {
				return b.Opaque("switch_statement", b.Ref("k"), b.Scoped("switch_body",
					b.Opaque("switch_case", b.Num("1"), b.Let(b.Declarator(decl, syntax.NoNode)), b.ExprStmt(ref))))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// const x = api; <construct>; x;
			b := syntax.NewBuilder()
			outerDecl := b.Binding("x")
			innerDecl := b.Binding("x")
			innerRef := b.Ref("x")
			outerRef := b.Ref("x")
			tree := b.Build(b.Program(
				b.Const(b.Declarator(outerDecl, b.Ref("api"))),
				tt.build(b, innerDecl, innerRef),
				b.ExprStmt(outerRef),
			))

			s := Analyze(tree)

			outer := s.BindingOf(outerDecl)
			inner := s.BindingOf(innerDecl)
			require.NotNil(t, outer)
			require.NotNil(t, inner)
			assert.NotSame(t, outer, inner)

			assert.Same(t, inner, s.BindingOf(innerRef))
			assert.Same(t, outer, s.BindingOf(outerRef))
			assert.Empty(t, outer.Writes)
			assert.Equal(t, []syntax.NodeID{outerRef}, outer.References)
		})
	}
}

func TestAnalyzeVarInLoopHeadHoists(t *testing.T) {
	// for (var i = 0; ; ) {} i;
	b := syntax.NewBuilder()
	decl := b.Binding("i")
	after := b.Ref("i")
	tree := b.Build(b.Program(
		b.Scoped("for_statement", b.Var("var", b.Declarator(decl, b.Num("0"))), b.Block()),
		b.ExprStmt(after),
	))

	s := Analyze(tree)

	require.NotNil(t, s.BindingOf(decl))
	assert.Same(t, s.BindingOf(decl), s.BindingOf(after))
	assert.Empty(t, s.Unresolved())
}

func TestAnalyzeLoopShadowsGlobal(t *testing.T) {
	// for (const api of xs) { api; } api;
	b := syntax.NewBuilder()
	inner := b.Ref("api")
	outer := b.Ref("api")
	tree := b.Build(b.Program(
		b.Scoped("for_in_statement",
			b.Const(b.Declarator(b.Binding("api"), syntax.NoNode)), b.Ref("xs"), b.Block(b.ExprStmt(inner))),
		b.ExprStmt(outer),
	))

	s := Analyze(tree)

	assert.True(t, s.HasBinding(inner, "api"))
	assert.False(t, s.HasBinding(outer, "api"))
	assert.Contains(t, s.Unresolved(), outer)
	assert.NotContains(t, s.Unresolved(), inner)
}

func TestAnalyzeNamedFunctionExpressionAndClassExpression(t *testing.T) {
	// const f = function self() { self; }; const K = class Inner { m() { Inner; } }; self; Inner;
	b := syntax.NewBuilder()
	selfInside := b.Ref("self")
	innerInside := b.Ref("Inner")
	selfOutside := b.Ref("self")
	innerOutside := b.Ref("Inner")
	tree := b.Build(b.Program(
		b.Const(b.Declarator(b.Binding("f"), b.FuncExpr("self", nil, b.Block(b.ExprStmt(selfInside))))),
		b.Const(b.Declarator(b.Binding("K"), b.ClassExpr("Inner", syntax.NoNode,
			b.Method("m", b.FuncExpr("", nil, b.Block(b.ExprStmt(innerInside))))))),
		b.ExprStmt(selfOutside),
		b.ExprStmt(innerOutside),
	))

	s := Analyze(tree)

	assert.NotNil(t, s.BindingOf(selfInside))
	assert.NotNil(t, s.BindingOf(innerInside))
	assert.Nil(t, s.BindingOf(selfOutside))
	assert.Nil(t, s.BindingOf(innerOutside))
}

func TestBindingKindString(t *testing.T) {
	assert.Equal(t, "local", BindingLocal.String())
	assert.Equal(t, "parameter", BindingParameter.String())
	assert.Equal(t, "hoisted-function", BindingHoistedFunction.String())
	assert.Equal(t, "module-import", BindingModuleImport.String())
	assert.Equal(t, "unknown", BindingUnknown.String())
}
