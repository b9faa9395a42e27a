// Package textutil provides the text comparison primitives used to match
// airplay cells against artist and song names.
//
// The primary use cases are:
//   - Normalizing free text so spelling, casing, and diacritic variants compare equal
//   - Computing edit distance between normalized strings
//   - Scoring similarity on a 0..1 scale against FuzzyThreshold
//
// Every function here is pure and total: no input produces an error.
package textutil
