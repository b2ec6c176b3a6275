// Package match provides identifier normalization, Levenshtein distance,
// and closest-name suggestions for misspelled keys and tags.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known names for an unknown one
package match
