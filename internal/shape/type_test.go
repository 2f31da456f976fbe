package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralEquality(t *testing.T) {
	a := Object([]Field{{Key: "a", Type: Number}, {Key: "b", Type: Array(String)}}, nil)
	b := Object([]Field{{Key: "a", Type: Primitive(PrimitiveNumber)}, {Key: "b", Type: Array(String)}}, nil)

	assert.True(t, Equal(a, b))
	assert.NotSame(t, a, b)

	reordered := Object([]Field{{Key: "b", Type: Array(String)}, {Key: "a", Type: Number}}, nil)
	assert.True(t, Equal(a, reordered))

	withRest := Object([]Field{{Key: "a", Type: Number}, {Key: "b", Type: Array(String)}}, Any())
	assert.False(t, Equal(a, withRest))
}

func TestUnionIsNotSimplified(t *testing.T) {
	assert.False(t, Equal(Union(Number), Number))
	assert.False(t, Equal(Union(Number, String), Union(String, Number)))
	assert.False(t, Equal(Union(Number, String), Intersection(Number, String)))
	assert.False(t, Equal(Union(Union(Number), String), Union(Number, String)))
	assert.Len(t, Union(Number, Number).Variants(), 2)
}

func TestDistinctShapes(t *testing.T) {
	shapes := []Type{
		Number, String, Boolean, BigInt, Symbol, Null, Undefined, Any(),
		Array(Number),
		Tuple([]Type{Number}, nil),
		Tuple([]Type{Number}, String),
		Tuple(nil, Number),
		Object(nil, nil),
		Object(nil, Number),
		Function(nil, nil),
		Function(Tuple([]Type{Number}, nil), String),
		Union(),
		Intersection(),
	}

	seen := make(map[string]Type)
	for _, s := range shapes {
		prev, dup := seen[s.Hash()]
		assert.False(t, dup, "%s collides with %v", s, prev)
		seen[s.Hash()] = s
	}
}

func TestNilComponentsDefaultToAny(t *testing.T) {
	assert.True(t, Equal(Array(nil), Array(Any())))
	assert.True(t, Equal(Function(nil, nil).Result(), Any()))
	assert.Equal(t, 0, Function(nil, nil).Args().Len())
}

func TestElementAt(t *testing.T) {
	tup := Tuple([]Type{Number, String}, nil)

	el, ok := ElementAt(tup, 1)
	require.True(t, ok)
	assert.True(t, Equal(String, el))

	_, ok = ElementAt(tup, 5)
	assert.False(t, ok)

	_, ok = ElementAt(tup, -1)
	assert.False(t, ok)

	withRest := Tuple([]Type{Number}, Boolean)
	el, ok = ElementAt(withRest, 7)
	require.True(t, ok)
	assert.True(t, Equal(Boolean, el))
}

func TestRemaining(t *testing.T) {
	tup := Tuple([]Type{Number, String, Boolean}, Null)

	assert.Same(t, tup, Remaining(tup, 0))
	assert.True(t, Equal(Tuple([]Type{String, Boolean}, Null), Remaining(tup, 1)))
	assert.True(t, Equal(Tuple(nil, Null), Remaining(tup, 3)))
	assert.True(t, Equal(Tuple(nil, Null), Remaining(tup, 10)))
}

func TestFieldAtAndWithout(t *testing.T) {
	obj := Object([]Field{{Key: "a", Type: Number}, {Key: "b", Type: String}}, Boolean)

	f, ok := FieldAt(obj, "a")
	require.True(t, ok)
	assert.True(t, Equal(Number, f))

	f, ok = FieldAt(obj, "zzz")
	require.True(t, ok)
	assert.True(t, Equal(Boolean, f))

	_, ok = FieldAt(Object(nil, nil), "a")
	assert.False(t, ok)

	assert.True(t, HasField(obj, "b"))
	assert.False(t, HasField(obj, "zzz"))

	rest := Without(obj, map[string]bool{"a": true})
	assert.True(t, Equal(Object([]Field{{Key: "b", Type: String}}, Boolean), rest))
	assert.Same(t, obj, Without(obj, nil))
}

func TestIndex(t *testing.T) {
	for key, want := range map[string]int{"0": 0, "1": 1, "42": 42} {
		n, ok := Index(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, n)
	}

	for _, key := range []string{"-1", "01", "1.5", "length", ""} {
		_, ok := Index(key)
		assert.False(t, ok, key)
	}
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 1, Depth(Number))
	assert.Equal(t, 2, Depth(Array(Number)))
	assert.Equal(t, 3, Depth(Object([]Field{{Key: "a", Type: Array(Number)}}, nil)))
	assert.Equal(t, 3, Depth(Function(Tuple([]Type{Number}, nil), String)))
	assert.Equal(t, 0, Depth(nil))
}

func TestVariants(t *testing.T) {
	assert.Len(t, Variants(Union(Number, String)), 2)
	assert.Len(t, Variants(Intersection(Number)), 1)
	assert.Nil(t, Variants(Number))
}

func TestString(t *testing.T) {
	cases := []struct {
		typ  Type
		want string
	}{
		{Number, "number"},
		{Any(), "any"},
		{Array(Number), "number[]"},
		{Array(Union(Number, String)), "(number | string)[]"},
		{Tuple([]Type{Number, String}, Boolean), "[number, string, ...boolean[]]"},
		{Object(nil, nil), "{}"},
		{Object([]Field{{Key: "a", Type: Number}, {Key: "my-key", Type: String}}, Any()), `{ a: number; "my-key": string; [key: string]: any }`},
		{Function(Tuple([]Type{Any()}, nil), Undefined), "(a0: any) => undefined"},
		{Union(Function(nil, Number), Null), "(() => number) | null"},
		{Intersection(Union(Number, String), Boolean), "(number | string) & boolean"},
		{Union(), "never"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.typ.String())
	}
}

func TestPrimitiveKindNames(t *testing.T) {
	for _, name := range []string{"number", "string", "boolean", "bigint", "symbol", "null", "undefined"} {
		k, ok := ParsePrimitive(name)
		require.True(t, ok, name)
		assert.Equal(t, name, k.Name())
	}

	k, ok := ParsePrimitive("void")
	assert.True(t, ok)
	assert.Equal(t, PrimitiveUndefined, k)

	_, ok = ParsePrimitive("object")
	assert.False(t, ok)

	assert.Equal(t, "PrimitiveNumber", PrimitiveNumber.String())
	assert.Equal(t, "KindTuple", KindTuple.String())
}
