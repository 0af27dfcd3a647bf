// Package diagnostic provides structured diagnostics for slot-order
// configuration validation.
//
// Key capabilities:
//   - Stable machine-readable codes per problem class
//   - Chart-kind and slot coordinates on each diagnostic
//   - Suggestions for likely fixes
//   - Aggregation into a single error for fail-fast callers
package diagnostic
