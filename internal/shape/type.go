package shape

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Type is a structural type shape. Implementations are immutable and are
// equal exactly when their Hash values are equal.
type Type interface {
	// Kind returns the variant.
	Kind() Kind
	// Hash returns the canonical structural encoding of the type.
	Hash() string
	// String returns a TypeScript-like rendering.
	String() string

	sealed()
}

// Equal reports structural equality.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Hash() == b.Hash()
}

// PrimitiveType is a primitive value kind.
type PrimitiveType struct {
	kind PrimitiveKind
}

// AnyType is the unconstrained type.
type AnyType struct{}

// ArrayType is a homogeneous array.
type ArrayType struct {
	elem Type
	hash string
}

// TupleType is a fixed-position array. Rest, when present, is the element
// type of every position past the fixed elements.
type TupleType struct {
	elems []Type
	rest  Type
	hash  string
}

// Field is a keyed member of an ObjectType.
type Field struct {
	Key  string
	Type Type
}

// ObjectType is a record of keyed fields. Rest, when present, is the type of
// every key not listed in the fields.
type ObjectType struct {
	fields []Field
	rest   Type
	hash   string
}

// FunctionType is a callable taking Args and producing Result.
type FunctionType struct {
	args   *TupleType
	result Type
	hash   string
}

// UnionType holds alternative variants verbatim.
type UnionType struct {
	variants []Type
	hash     string
}

// IntersectionType holds conjoined variants verbatim.
type IntersectionType struct {
	variants []Type
	hash     string
}

var (
	Number    Type = Primitive(PrimitiveNumber)
	String    Type = Primitive(PrimitiveString)
	Boolean   Type = Primitive(PrimitiveBoolean)
	BigInt    Type = Primitive(PrimitiveBigInt)
	Symbol    Type = Primitive(PrimitiveSymbol)
	Null      Type = Primitive(PrimitiveNull)
	Undefined Type = Primitive(PrimitiveUndefined)
)

// Primitive returns the primitive type of kind k.
func Primitive(k PrimitiveKind) *PrimitiveType {
	return &PrimitiveType{kind: k}
}

// Any returns the unconstrained type.
func Any() *AnyType {
	return &AnyType{}
}

// Array returns an array of elem. A nil elem means Any.
func Array(elem Type) *ArrayType {
	elem = orAny(elem)

	return &ArrayType{elem: elem, hash: "A(" + elem.Hash() + ")"}
}

// Tuple returns a tuple of elems followed by an optional rest element type.
func Tuple(elems []Type, rest Type) *TupleType {
	elems = normalize(elems)

	var sb strings.Builder
	sb.WriteString("T(")
	writeHashes(&sb, elems)

	if rest != nil {
		sb.WriteString(";...")
		sb.WriteString(rest.Hash())
	}

	sb.WriteString(")")

	return &TupleType{elems: elems, rest: rest, hash: sb.String()}
}

// Object returns an object with the given fields and optional rest type.
// Field order is kept for display; equality ignores it.
func Object(fields []Field, rest Type) *ObjectType {
	fields = slices.Clone(fields)
	for i := range fields {
		fields[i].Type = orAny(fields[i].Type)
	}

	ordered := slices.Clone(fields)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Key < ordered[j].Key
	})

	var sb strings.Builder
	sb.WriteString("O(")

	for i, f := range ordered {
		if i > 0 {
			sb.WriteString(",")
		}

		sb.WriteString(strconv.Quote(f.Key))
		sb.WriteString(":")
		sb.WriteString(f.Type.Hash())
	}

	if rest != nil {
		sb.WriteString(";...")
		sb.WriteString(rest.Hash())
	}

	sb.WriteString(")")

	return &ObjectType{fields: fields, rest: rest, hash: sb.String()}
}

// Function returns a function type. Nil args means no parameters, nil
// result means Any.
func Function(args *TupleType, result Type) *FunctionType {
	if args == nil {
		args = Tuple(nil, nil)
	}

	result = orAny(result)

	return &FunctionType{
		args:   args,
		result: result,
		hash:   "F(" + args.Hash() + "=>" + result.Hash() + ")",
	}
}

// Union returns the union of variants without simplification.
func Union(variants ...Type) *UnionType {
	variants = normalize(variants)

	var sb strings.Builder
	sb.WriteString("U(")
	writeHashes(&sb, variants)
	sb.WriteString(")")

	return &UnionType{variants: variants, hash: sb.String()}
}

// Intersection returns the intersection of variants without simplification.
func Intersection(variants ...Type) *IntersectionType {
	variants = normalize(variants)

	var sb strings.Builder
	sb.WriteString("I(")
	writeHashes(&sb, variants)
	sb.WriteString(")")

	return &IntersectionType{variants: variants, hash: sb.String()}
}

func orAny(t Type) Type {
	if t == nil {
		return Any()
	}

	return t
}

func normalize(ts []Type) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = orAny(t)
	}

	return out
}

func writeHashes(sb *strings.Builder, ts []Type) {
	for i, t := range ts {
		if i > 0 {
			sb.WriteString(",")
		}

		sb.WriteString(t.Hash())
	}
}

func (t *PrimitiveType) Kind() Kind { return KindPrimitive }
func (t *PrimitiveType) Hash() string { return t.kind.Name() }
func (t *PrimitiveType) Primitive() PrimitiveKind { return t.kind }
func (t *AnyType) Kind() Kind { return KindAny }
func (t *AnyType) Hash() string { return "any" }
func (t *ArrayType) Kind() Kind { return KindArray }
func (t *ArrayType) Hash() string { return t.hash }
func (t *ArrayType) Elem() Type { return t.elem }
func (t *TupleType) Kind() Kind { return KindTuple }
func (t *TupleType) Hash() string { return t.hash }
func (t *TupleType) Len() int { return len(t.elems) }
func (t *TupleType) Rest() Type { return t.rest }
func (t *ObjectType) Kind() Kind { return KindObject }
func (t *ObjectType) Hash() string { return t.hash }
func (t *ObjectType) Rest() Type { return t.rest }
func (t *FunctionType) Kind() Kind { return KindFunction }
func (t *FunctionType) Hash() string { return t.hash }
func (t *FunctionType) Args() *TupleType { return t.args }
func (t *FunctionType) Result() Type { return t.result }
func (t *UnionType) Kind() Kind { return KindUnion }
func (t *UnionType) Hash() string { return t.hash }
func (t *IntersectionType) Kind() Kind { return KindIntersection }
func (t *IntersectionType) Hash() string { return t.hash }
func (t *PrimitiveType) sealed() {}
func (t *AnyType) sealed() {}
func (t *ArrayType) sealed() {}
func (t *TupleType) sealed() {}
func (t *ObjectType) sealed() {}
func (t *FunctionType) sealed() {}
func (t *UnionType) sealed() {}
func (t *IntersectionType) sealed() {}
func (t *TupleType) Elements() []Type { return slices.Clone(t.elems) }
func (t *ObjectType) Fields() []Field { return slices.Clone(t.fields) }
func (t *UnionType) Variants() []Type { return slices.Clone(t.variants) }
func (t *IntersectionType) Variants() []Type { return slices.Clone(t.variants) }
