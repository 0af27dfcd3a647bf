// Package plot is the public plotting surface: one operation per chart
// kind, each resolving the source's dimensions onto that kind's slots and
// handing the result to a Builder.
//
// The split is deliberate: this package owns which dimension drives which
// visual slot and what every column is labeled; the Builder owns pixels.
// Resolution failures surface before the Builder is ever invoked, so no
// partial figures exist.
package plot
