package shape

import "fmt"

//go:generate go tool stringer -type=Kind,PrimitiveKind -output=kind_string.go

// Kind is the variant of a Type.
type Kind int

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindArray
	KindTuple
	KindObject
	KindFunction
	KindUnion
	KindIntersection
	KindAny
)

// PrimitiveKind enumerates the primitive value kinds.
type PrimitiveKind int

const (
	_ PrimitiveKind = iota // skip zero value, invalid primitive

	PrimitiveNumber
	PrimitiveString
	PrimitiveBoolean
	PrimitiveBigInt
	PrimitiveSymbol
	PrimitiveNull
	PrimitiveUndefined
)

// Name returns the TypeScript spelling of the primitive.
func (k PrimitiveKind) Name() string {
	switch k {
	case PrimitiveNumber:
		return "number"
	case PrimitiveString:
		return "string"
	case PrimitiveBoolean:
		return "boolean"
	case PrimitiveBigInt:
		return "bigint"
	case PrimitiveSymbol:
		return "symbol"
	case PrimitiveNull:
		return "null"
	case PrimitiveUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("primitive(%d)", int(k))
	}
}

// ParsePrimitive maps a TypeScript primitive name to its kind.
func ParsePrimitive(name string) (PrimitiveKind, bool) {
	switch name {
	case "number":
		return PrimitiveNumber, true
	case "string":
		return PrimitiveString, true
	case "boolean":
		return PrimitiveBoolean, true
	case "bigint":
		return PrimitiveBigInt, true
	case "symbol":
		return PrimitiveSymbol, true
	case "null":
		return PrimitiveNull, true
	case "undefined", "void":
		return PrimitiveUndefined, true
	default:
		return 0, false
	}
}
