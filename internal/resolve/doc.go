// Package resolve finds the aliases of a syntax node: every other node
// guaranteed to observe the same runtime value.
//
// The answer is flow-insensitive but never invents an alias. Missing an
// alias only loses inference; a false alias would let a rewrite fire on an
// unrelated object, so any key that cannot be read statically yields no
// edge at all.
//
// Key types:
//   - Resolver: alias queries over one tree and its bindings
package resolve
