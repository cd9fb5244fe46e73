// Package geom provides small integer geometry types for grid and
// voxel puzzles.
//
// It is patterned loosely after image.Point and image.Rectangle, but
// regions are stored as an origin and an extent rather than two
// corners, and everything is generic over the integer type in use.
package geom

import "golang.org/x/exp/constraints"

// Integer is a constraint for the types that geom types and functions
// can handle.
type Integer interface {
	constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in mask are set in e.
func (e Edges) Has(mask Edges) bool {
	return e&mask == mask
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "EdgeNone"
	}

	var buf []byte
	for _, edge := range [...]struct {
		bit  Edges
		name string
	}{
		{EdgeTop, "EdgeTop"},
		{EdgeBottom, "EdgeBottom"},
		{EdgeLeft, "EdgeLeft"},
		{EdgeRight, "EdgeRight"},
	} {
		if e&edge.bit == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, edge.name...)
	}
	return string(buf)
}
