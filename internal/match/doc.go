// Package match ranks known names by similarity to an unknown one, for the
// "did you mean" hints attached to registry and import diagnostics.
//
// Key functions:
//   - NormalizeName: folds identifiers and module specifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders candidate names by similarity
//   - Suggest: the best candidates above a score threshold
package match
