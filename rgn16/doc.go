// Package rgn16 implements the 16-bit rectangular region algebra used to
// represent arbitrary cell selections in a 2-D grid with guaranteed
// canonical form.
//
// A Region is a pure value type: Empty (no cells), Simple (one rectangle),
// or Complex (an extents rectangle followed by a canonical band
// decomposition of further rectangles). The package never mutates an input
// Region; every combinator returns a freshly built one.
//
// The combinators (Union, Subtract, Xor) and ContainsRect are grounded on
// mCtrl's rgn16.c: same canonical-form contract (bands sorted by y0, rects
// within a band sorted and gapped by x0, adjacent same-width bands
// coalesced), same allocation-free-on-failure guarantee. The internal
// sweep is reimplemented with ordinary interval algebra over per-band
// x-spans (see bands.go) rather than the C file's pointer-walking
// MERGE/APPEND macros, which is easier to verify in a managed language and
// produces byte-identical canonical output for the same inputs.
package rgn16
