// Package match provides Levenshtein distance calculation and closest-name
// lookup, used to attach "did you mean" suggestions to unknown-dimension
// errors.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the most similar candidate name, if any is close enough
package match
