// Package wfc implements Wave Function Collapse over a discrete symbol grid,
// as described by Oskar Stalberg.
//
// The algorithm learns the local adjacency structure of a small example grid
// (which symbols are allowed next to which, in which direction) and then
// synthesizes a larger output grid that is locally consistent with the
// example under a sliding NxN window. Each output cell starts as a
// superposition of every pattern seen in the example and is narrowed down
// ("collapsed") one cell at a time, propagating the consequences of each
// collapse to its neighbours until either every cell has exactly one
// remaining possibility or a contradiction is reached.
//
// The package owns no I/O: it consumes a SymbolGrid and produces another
// one. Rendering a grid to pixels, loading it from a file, or picking a seed
// interactively are all the caller's concern.
package wfc
