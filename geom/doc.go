// Package geom defines the integer lattice Point used as the vertex type
// throughout the parser, the planar graph model, and the cycle/filament
// extractor, together with the clockwise-most/counter-clockwise-most
// geometric predicate the extractor needs to trace minimal faces.
//
// Point is intentionally the only coordinate type in this module: diagonal
// line segments are not supported, so every vertex produced by the parser
// sits on an integer (column, row) grid cell.
package geom
