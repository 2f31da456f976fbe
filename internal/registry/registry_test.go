package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeflow/internal/shape"
)

const sample = `
types:
  Datasource:
    object:
      fields:
        url: string
        port: number
modules:
  pkg:
    object:
      fields:
        Foo: {function: {args: [number], result: string}}
        items: {array: {ref: Datasource}}
globals:
  api:
    object:
      fields:
        setDatasource: {function: {args: [{ref: Datasource}], result: void}}
        pair: {tuple: {elements: [string, number], rest: boolean}}
        mode: {union: [string, null]}
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"Datasource"}, f.Types.Names())
	assert.Equal(t, []string{"pkg"}, f.Modules.Names())
	assert.Equal(t, []string{"api"}, f.Globals.Names())

	ds, ok := f.Types.Lookup("Datasource")
	require.True(t, ok)
	require.NotNil(t, ds.Object)
	assert.Equal(t, []string{"url", "port"}, ds.Object.Fields.Names())
	assert.Equal(t, 3, f.Types[0].Line)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "duplicate name",
			yaml: "globals:\n  a: string\n  a: number\n",
			want: `"a" already declared on line 2`,
		},
		{
			name: "two constructors",
			yaml: "globals:\n  a: {array: string, ref: X}\n",
			want: "exactly one key",
		},
		{
			name: "unknown constructor",
			yaml: "globals:\n  a: {arary: string}\n",
			want: `did you mean "array"?`,
		},
		{
			name: "sequence instead of mapping",
			yaml: "globals:\n  - a\n",
			want: "expected a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestToSeedRegistry(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	reg, err := f.ToSeedRegistry()
	require.NoError(t, err)

	datasource := shape.Object([]shape.Field{
		{Key: "url", Type: shape.String},
		{Key: "port", Type: shape.Number},
	}, nil)

	wantPkg := shape.Object([]shape.Field{
		{Key: "Foo", Type: shape.Function(shape.Tuple([]shape.Type{shape.Number}, nil), shape.String)},
		{Key: "items", Type: shape.Array(datasource)},
	}, nil)
	assert.True(t, shape.Equal(wantPkg, reg.Modules["pkg"]), "got %s", reg.Modules["pkg"])

	api, ok := reg.Globals["api"].(*shape.ObjectType)
	require.True(t, ok)

	set, ok := shape.FieldAt(api, "setDatasource")
	require.True(t, ok)
	assert.Equal(t, "(a0: { url: string; port: number }) => undefined", set.String())

	pair, ok := shape.FieldAt(api, "pair")
	require.True(t, ok)
	assert.Equal(t, "[string, number, ...boolean[]]", pair.String())

	mode, ok := shape.FieldAt(api, "mode")
	require.True(t, ok)
	assert.True(t, shape.Equal(shape.Union(shape.String, shape.Null), mode))
}

func TestToSeedRegistryNilIsAny(t *testing.T) {
	f, err := Parse([]byte("globals:\n  x:\n"))
	require.NoError(t, err)

	reg, err := f.ToSeedRegistry()
	require.NoError(t, err)
	assert.Equal(t, "any", reg.Globals["x"].String())
}

func TestToSeedRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		want    string
	}{
		{
			name:    "cyclic ref",
			yaml:    "types:\n  A: {array: {ref: B}}\n  B: {object: {fields: {a: {ref: A}}}}\n",
			wantErr: ErrCyclicRef,
			want:    `"A"`,
		},
		{
			name:    "self ref",
			yaml:    "types:\n  Node: {object: {fields: {next: {ref: Node}}}}\n",
			wantErr: ErrCyclicRef,
		},
		{
			name:    "unknown ref",
			yaml:    "types:\n  Datasource: string\nglobals:\n  api: {ref: Datasorce}\n",
			wantErr: ErrUnknownRef,
			want:    `did you mean "Datasource"?`,
		},
		{
			name:    "unknown scalar",
			yaml:    "globals:\n  api: strng\n",
			wantErr: ErrUnknownType,
			want:    `did you mean "string"?`,
		},
		{
			name:    "declared shape used as scalar",
			yaml:    "types:\n  Datasource: string\nglobals:\n  api: Datasource\n",
			wantErr: ErrUnknownType,
			want:    "use {ref: Datasource}",
		},
		{
			name:    "unused broken shape",
			yaml:    "types:\n  Broken: {array: nothing}\n",
			wantErr: ErrUnknownType,
			want:    "types.Broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, err = f.ToSeedRegistry()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestShape(t *testing.T) {
	typ, err := Shape(&TypeExpr{Array: &TypeExpr{Name: "number"}})
	require.NoError(t, err)
	assert.Equal(t, "number[]", typ.String())

	_, err = Shape(&TypeExpr{})
	assert.ErrorIs(t, err, ErrEmptyType)
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)

	want, err := f.ToSeedRegistry()
	require.NoError(t, err)
	got, err := again.ToSeedRegistry()
	require.NoError(t, err)

	assert.Equal(t, f.Modules.Names(), again.Modules.Names())
	assert.True(t, shape.Equal(want.Modules["pkg"], got.Modules["pkg"]))
	assert.True(t, shape.Equal(want.Globals["api"], got.Globals["api"]))
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	f, err := LoadFile(path)
	require.NoError(t, err)

	out := filepath.Join(dir, "copy.yaml")
	require.NoError(t, WriteFile(f, out))

	again, err := LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, f.Globals.Names(), again.Globals.Names())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFileReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("globals:\n  a: {arary: string}\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestMerge(t *testing.T) {
	base, err := Parse([]byte("globals:\n  a: string\n  b: number\n"))
	require.NoError(t, err)

	overlay, err := Parse([]byte("globals:\n  b: boolean\n  c: bigint\n"))
	require.NoError(t, err)

	merged := Merge(base, nil, overlay)

	assert.Equal(t, []string{"a", "b", "c"}, merged.Globals.Names())

	b, ok := merged.Globals.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "boolean", b.Name)

	assert.Equal(t, []string{"a", "b"}, base.Globals.Names(), "inputs are not modified")
}
