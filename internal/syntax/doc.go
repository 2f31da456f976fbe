// Package syntax provides the read-only syntax tree the inference engine runs over.
//
// Nodes live in an arena owned by a Tree and are addressed by NodeID handles,
// so identity is an integer comparison and trees can be shared between
// goroutines once built. The node vocabulary is an ESTree-like subset of
// JavaScript/TypeScript with identifiers split by role (reference, binding,
// property name).
//
// Key types:
//   - NodeID: arena handle, NoNode is the zero value
//   - Kind: closed set of node kinds
//   - Tree: arena plus role accessors (Object, Callee, Init, Params, ...)
//   - Builder: constructs trees for front ends and tests
package syntax
