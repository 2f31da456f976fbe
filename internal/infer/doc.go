// Package infer is the propagation engine: starting from seed facts it
// derives, for every syntax node, the set of type shapes that can flow
// through it.
//
// The engine runs a worklist to a fixed point. Each popped (node, type)
// pair is recorded once, then produces successors of two kinds: the same
// type on every alias of the node, and the pairs implied by the node's
// syntactic context under that type's shape. Facts are only ever added.
//
// Key types:
//   - Engine: one configured inference pass
//   - Config: limits and logging
//   - TypedNodeSet: the node to type-set result
//   - WorkItem: a pending (node, type) pair
package infer
