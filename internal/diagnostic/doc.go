// Package diagnostic provides structured errors, warnings, and notes
// produced while matching a table of contents against the known dialect
// shapes.
//
// Key capabilities:
//   - Per-shape failure reports (which shape was attempted and why it failed)
//   - Field paths pointing into the source document (e.g. "parts[0].chapters[2]")
//   - Suggestions for misspelled keys and dialect tags
package diagnostic
