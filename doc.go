// Package planargrid turns an ASCII box-and-line diagram into a planar
// graph: anchors, bullets and line segments on one side, minimal
// interior cycles and dangling filaments on the other.
//
// The engine is a two-pass pipeline:
//
//	classify/    — categorizes each input character
//	segment/     — accumulates horizontal/vertical runs into segments
//	parser/      — drives the classifier and accumulators across a grid
//	planargraph/ — generic undirected graph with canonical edge keys
//	extract/     — partitions a planar graph into cycles and filaments
//	diagram/     — glues parser output to planargraph/extract
//	geom/        — the integer-lattice Point type and its turn predicate
//
// Around that core, loader/ reads diagrams from disk, cliconfig/ loads
// CLI output preferences, and cmd/planargrid is the command-line tool
// that ties all of it together:
//
//	go install github.com/planargrid/planargrid/cmd/planargrid
//
// Quick ASCII example:
//
//	+--+
//	|  |
//	+--+
//
// parses into one cycle of four vertices and zero filaments; add a tail
// (`+--+----*`) and the same diagram yields one cycle plus one filament.
package planargrid
