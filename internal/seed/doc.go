// Package seed turns a registry of known module and global types into the
// initial facts of an inference run.
//
// Key types:
//   - Registry: module specifier and global name to type
//   - Seed: one (node, type) fact
package seed
