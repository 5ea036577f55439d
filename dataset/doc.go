// Package dataset produces driver input for the clustering kernel and
// reads and writes the plain-text dump format.
//
// A point dump has one "x y" line per point; an assignment dump has one
// cluster id per line. Both formats are what package sink persists.
package dataset
