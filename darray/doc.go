// Package darray holds the labeled-array surface the plotting operations
// consume: dimension names in axis order, display metadata, and an opaque
// values handle.
//
// Axis order is load-bearing: it is the only signal used when dimensions
// are assigned to chart slots positionally. Nothing in this package (or in
// the slot machinery) ever reads the values themselves.
package darray
