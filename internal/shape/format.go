package shape

import (
	"regexp"
	"strconv"
	"strings"
)

var identKey = regexp.MustCompile(`^[A-Za-z_$#][A-Za-z0-9_$]*$`)

// precedence levels used to decide parenthesization.
const (
	precFunction = iota + 1
	precUnion
	precIntersection
	precPostfix
)

func (t *PrimitiveType) String() string { return t.kind.Name() }
func (t *AnyType) String() string { return "any" }
func (t *ArrayType) String() string { return format(t, 0) }
func (t *TupleType) String() string { return format(t, 0) }
func (t *ObjectType) String() string { return format(t, 0) }
func (t *FunctionType) String() string { return format(t, 0) }
func (t *UnionType) String() string { return format(t, 0) }
func (t *IntersectionType) String() string { return format(t, 0) }

func format(t Type, outer int) string {
	switch v := t.(type) {
	case nil:
		return "<nil>"

	case *PrimitiveType, *AnyType:
		return v.String()

	case *ArrayType:
		return format(v.elem, precPostfix) + "[]"

	case *TupleType:
		parts := make([]string, 0, len(v.elems)+1)
		for _, e := range v.elems {
			parts = append(parts, format(e, 0))
		}

		if v.rest != nil {
			parts = append(parts, "..."+format(v.rest, precPostfix)+"[]")
		}

		return "[" + strings.Join(parts, ", ") + "]"

	case *ObjectType:
		if len(v.fields) == 0 && v.rest == nil {
			return "{}"
		}

		parts := make([]string, 0, len(v.fields)+1)
		for _, f := range v.fields {
			parts = append(parts, formatKey(f.Key)+": "+format(f.Type, 0))
		}

		if v.rest != nil {
			parts = append(parts, "[key: string]: "+format(v.rest, 0))
		}

		return "{ " + strings.Join(parts, "; ") + " }"

	case *FunctionType:
		params := make([]string, 0, len(v.args.elems)+1)
		for i, a := range v.args.elems {
			params = append(params, "a"+strconv.Itoa(i)+": "+format(a, 0))
		}

		if v.args.rest != nil {
			params = append(params, "...rest: "+format(v.args.rest, precPostfix)+"[]")
		}

		return wrap("("+strings.Join(params, ", ")+") => "+format(v.result, precFunction), precFunction, outer)

	case *UnionType:
		return joinVariants(v.variants, " | ", precUnion, outer, "never")

	case *IntersectionType:
		return joinVariants(v.variants, " & ", precIntersection, outer, "unknown")

	default:
		return t.Hash()
	}
}

func joinVariants(variants []Type, sep string, prec, outer int, empty string) string {
	if len(variants) == 0 {
		return empty
	}

	parts := make([]string, len(variants))
	for i, v := range variants {
		parts[i] = format(v, prec+1)
	}

	return wrap(strings.Join(parts, sep), prec, outer)
}

func wrap(s string, prec, outer int) string {
	if outer > prec {
		return "(" + s + ")"
	}

	return s
}

func formatKey(key string) string {
	if identKey.MatchString(key) {
		return key
	}

	if _, ok := Index(key); ok {
		return key
	}

	return strconv.Quote(key)
}
