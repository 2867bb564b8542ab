// Package numtext provides the fixed-point and floating-point ASCII conversion routines
// used on the loader's hot path and the renderer's output writer. It trades the generality
// of strconv for a digit-pair lookup table and a hand-rolled float scanner, the same
// trade-off the reference implementation makes in its Conversions and FixedPoint helpers.
package numtext
