// Package diagnostic collects per-file problems found while running
// inference from the command line.
//
// Key capabilities:
//   - Syntax errors reported by the front end
//   - Unknown module warnings with registry suggestions
//   - Step budget notices for truncated runs
package diagnostic
