package shape

import "strconv"

// ElementAt returns the type at position i of a tuple: the fixed element
// when i is in range, otherwise the rest type if there is one.
func ElementAt(t *TupleType, i int) (Type, bool) {
	if i < 0 {
		return nil, false
	}

	if i < len(t.elems) {
		return t.elems[i], true
	}

	if t.rest != nil {
		return t.rest, true
	}

	return nil, false
}

// Remaining returns the tuple of positions from i onwards with the same rest.
func Remaining(t *TupleType, from int) *TupleType {
	if from <= 0 {
		return t
	}

	if from >= len(t.elems) {
		return Tuple(nil, t.rest)
	}

	return Tuple(t.elems[from:], t.rest)
}

// FieldAt returns the type of key in an object: the declared field, or the
// rest type for undeclared keys.
func FieldAt(t *ObjectType, key string) (Type, bool) {
	for _, f := range t.fields {
		if f.Key == key {
			return f.Type, true
		}
	}

	if t.rest != nil {
		return t.rest, true
	}

	return nil, false
}

// HasField reports whether key is declared explicitly on t.
func HasField(t *ObjectType, key string) bool {
	for _, f := range t.fields {
		if f.Key == key {
			return true
		}
	}

	return false
}

// Without returns t minus the fields whose keys are in matched, keeping the rest type.
func Without(t *ObjectType, matched map[string]bool) *ObjectType {
	if len(matched) == 0 {
		return t
	}

	fields := make([]Field, 0, len(t.fields))
	for _, f := range t.fields {
		if !matched[f.Key] {
			fields = append(fields, f)
		}
	}

	return Object(fields, t.rest)
}

// Result returns the result type of a function.
func Result(t *FunctionType) Type {
	return t.result
}

// Variants returns the variants of a union or intersection, nil otherwise.
func Variants(t Type) []Type {
	switch v := t.(type) {
	case *UnionType:
		return v.variants
	case *IntersectionType:
		return v.variants
	default:
		return nil
	}
}

// Index parses an array index key: a canonical non-negative integer.
func Index(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 || strconv.Itoa(n) != key {
		return 0, false
	}

	return n, true
}

// Depth returns the nesting depth of t; primitives and Any have depth 1.
func Depth(t Type) int {
	maxOf := func(ts []Type) int {
		d := 0
		for _, x := range ts {
			d = max(d, Depth(x))
		}

		return d
	}

	switch v := t.(type) {
	case nil:
		return 0
	case *ArrayType:
		return 1 + Depth(v.elem)
	case *TupleType:
		return 1 + max(maxOf(v.elems), Depth(v.rest))
	case *ObjectType:
		d := Depth(v.rest)
		for _, f := range v.fields {
			d = max(d, Depth(f.Type))
		}

		return 1 + d
	case *FunctionType:
		return 1 + max(Depth(v.args), Depth(v.result))
	case *UnionType:
		return 1 + maxOf(v.variants)
	case *IntersectionType:
		return 1 + maxOf(v.variants)
	default:
		return 1
	}
}
