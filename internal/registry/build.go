package registry

import (
	"errors"
	"fmt"

	"typeflow/internal/common"
	"typeflow/internal/match"
	"typeflow/internal/seed"
	"typeflow/internal/shape"
)

var (
	// ErrUnknownType is returned for a type name that is neither a primitive nor any.
	ErrUnknownType = errors.New("unknown type name")
	// ErrUnknownRef is returned for a ref to an undeclared shape.
	ErrUnknownRef = errors.New("unknown type reference")
	// ErrCyclicRef is returned for a ref that reaches itself.
	ErrCyclicRef = errors.New("cyclic type reference")
	// ErrEmptyType is returned for an expression with no constructor set.
	ErrEmptyType = errors.New("empty type expression")
)

var scalarNames = []string{"number", "string", "boolean", "bigint", "symbol", "null", "undefined", "void", "any"}

// ToSeedRegistry converts the file into the registry the seed extractor
// consumes. Every declared shape is checked, used or not.
func (f *File) ToSeedRegistry() (seed.Registry, error) {
	b := &builder{
		types:    f.Types,
		built:    make(map[string]shape.Type),
		visiting: make(map[string]bool),
	}

	reg := seed.Registry{
		Modules: make(map[string]shape.Type, len(f.Modules)),
		Globals: make(map[string]shape.Type, len(f.Globals)),
	}

	for _, e := range f.Types {
		if _, err := b.ref(e.Name, e.Line); err != nil {
			return seed.Registry{}, fmt.Errorf("types.%s: %w", e.Name, err)
		}
	}

	for _, section := range []struct {
		name  string
		table Table
		dst   map[string]shape.Type
	}{
		{"modules", f.Modules, reg.Modules},
		{"globals", f.Globals, reg.Globals},
	} {
		for _, e := range section.table {
			t, err := b.build(e.Type)
			if err != nil {
				return seed.Registry{}, fmt.Errorf("%s.%s: %w", section.name, e.Name, err)
			}

			section.dst[e.Name] = t
		}
	}

	return reg, nil
}

// Shape converts a single expression that uses no refs.
func Shape(te *TypeExpr) (shape.Type, error) {
	b := &builder{built: make(map[string]shape.Type), visiting: make(map[string]bool)}
	return b.build(te)
}

type builder struct {
	types    Table
	built    map[string]shape.Type
	visiting map[string]bool
}

func (b *builder) build(te *TypeExpr) (shape.Type, error) {
	if te == nil {
		return shape.Any(), nil
	}

	switch {
	case te.Name != "":
		return b.scalar(te)
	case te.Ref != "":
		return b.ref(te.Ref, te.line)
	case te.Array != nil:
		elem, err := b.build(te.Array)
		if err != nil {
			return nil, err
		}

		return shape.Array(elem), nil
	case te.Tuple != nil:
		elems, rest, err := b.sequence(te.Tuple.Elements, te.Tuple.Rest)
		if err != nil {
			return nil, err
		}

		return shape.Tuple(elems, rest), nil
	case te.Object != nil:
		return b.object(te.Object)
	case te.Function != nil:
		args, rest, err := b.sequence(te.Function.Args, te.Function.Rest)
		if err != nil {
			return nil, err
		}

		result, err := b.build(te.Function.Result)
		if err != nil {
			return nil, err
		}

		return shape.Function(shape.Tuple(args, rest), result), nil
	case te.Union != nil:
		variants, err := b.list(te.Union)
		if err != nil {
			return nil, err
		}

		return shape.Union(variants...), nil
	case te.Intersection != nil:
		variants, err := b.list(te.Intersection)
		if err != nil {
			return nil, err
		}

		return shape.Intersection(variants...), nil
	default:
		return nil, fmt.Errorf("line %d: %w", te.line, ErrEmptyType)
	}
}

func (b *builder) scalar(te *TypeExpr) (shape.Type, error) {
	if te.Name == "any" {
		return shape.Any(), nil
	}

	if k, ok := shape.ParsePrimitive(te.Name); ok {
		return shape.Primitive(k), nil
	}

	err := fmt.Errorf("line %d: %w %q", te.line, ErrUnknownType, te.Name)

	if _, declared := b.types.Lookup(te.Name); declared {
		return nil, fmt.Errorf("%w (use {ref: %s})", err, te.Name)
	}

	if s, ok := common.First(match.Suggest(te.Name, scalarNames, match.DefaultMinScore, 1)); ok {
		return nil, fmt.Errorf("%w (did you mean %q?)", err, s)
	}

	return nil, err
}

func (b *builder) ref(name string, line int) (shape.Type, error) {
	if t, ok := b.built[name]; ok {
		return t, nil
	}

	te, ok := b.types.Lookup(name)
	if !ok {
		err := fmt.Errorf("line %d: %w %q", line, ErrUnknownRef, name)
		if s, ok := common.First(match.Suggest(name, b.types.Names(), match.DefaultMinScore, 1)); ok {
			return nil, fmt.Errorf("%w (did you mean %q?)", err, s)
		}

		return nil, err
	}

	if b.visiting[name] {
		return nil, fmt.Errorf("line %d: %w %q", line, ErrCyclicRef, name)
	}

	b.visiting[name] = true
	defer delete(b.visiting, name)

	t, err := b.build(te)
	if err != nil {
		return nil, err
	}

	b.built[name] = t

	return t, nil
}

func (b *builder) object(oe *ObjectExpr) (shape.Type, error) {
	fields := make([]shape.Field, 0, len(oe.Fields))

	for _, e := range oe.Fields {
		t, err := b.build(e.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", e.Name, err)
		}

		fields = append(fields, shape.Field{Key: e.Name, Type: t})
	}

	var rest shape.Type

	if oe.Rest != nil {
		var err error
		if rest, err = b.build(oe.Rest); err != nil {
			return nil, err
		}
	}

	return shape.Object(fields, rest), nil
}

func (b *builder) sequence(elems []*TypeExpr, restExpr *TypeExpr) ([]shape.Type, shape.Type, error) {
	out, err := b.list(elems)
	if err != nil {
		return nil, nil, err
	}

	if restExpr == nil {
		return out, nil, nil
	}

	rest, err := b.build(restExpr)
	if err != nil {
		return nil, nil, err
	}

	return out, rest, nil
}

func (b *builder) list(exprs []*TypeExpr) ([]shape.Type, error) {
	out := make([]shape.Type, 0, len(exprs))

	for _, te := range exprs {
		t, err := b.build(te)
		if err != nil {
			return nil, err
		}

		out = append(out, t)
	}

	return out, nil
}
