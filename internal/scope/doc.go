// Package scope computes name-resolution facts for a syntax.Tree.
//
// It is the binding collaborator of the inference engine: for every
// identifier it knows the binding it denotes, and for every binding its
// declaration site, its kind, the nodes that read it and the nodes that
// reassign it.
//
// Key types:
//   - Binding: one declared name with its references and writes
//   - BindingKind: local, parameter, hoisted function, module import
//   - Scopes: the result of Analyze, queried by node
package scope
