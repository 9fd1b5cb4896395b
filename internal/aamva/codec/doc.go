// Package codec owns the barcode payload byte layout.
//
// Ownership boundary:
// - compliance prefix and fixed header
// - subfile designator table, including the legacy offset arithmetic
// - subfile body slicing and data-element splitting
package codec
