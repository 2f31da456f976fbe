// Package shape is the structural type model of the inference engine.
//
// Types are immutable values compared and hashed by structure: the same
// logical shape is rebuilt many times while the engine decomposes and
// recomposes containers, so identity never matters. Union and Intersection
// keep their variant lists verbatim and are never flattened or simplified.
//
// Key types:
//   - Type: closed union of PrimitiveType, ArrayType, TupleType, ObjectType,
//     FunctionType, UnionType, IntersectionType and AnyType
//   - Field: a keyed member of an ObjectType
//   - Set: a structural set of types
package shape
