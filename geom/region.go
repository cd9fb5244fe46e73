package geom

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y)
// and a size of W by H. It covers the half-open ranges [X, X+W) and
// [Y, Y+H), so a Rect with a zero or negative extent contains no
// points.
type Rect[T Integer] struct {
	X, Y, W, H T
}

// Rt is shorthand for Rect[T]{X: x, Y: y, W: w, H: h}.
func Rt[T Integer](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, W: w, H: h}
}

// RectAt returns the rectangle with its top-left corner at origin and
// the given size.
func RectAt[T Integer](origin, size Vec2[T]) Rect[T] {
	return Rect[T]{X: origin.X, Y: origin.Y, W: size.X, H: size.Y}
}

// Min returns the top-left corner of r.
func (r Rect[T]) Min() Vec2[T] { return Vec2[T]{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner of r. It is not itself
// contained in r.
func (r Rect[T]) Max() Vec2[T] { return Vec2[T]{X: r.X + r.W, Y: r.Y + r.H} }

// Size returns the width and height of r as a vector.
func (r Rect[T]) Size() Vec2[T] { return Vec2[T]{X: r.W, Y: r.H} }

// Empty reports whether r contains no points.
func (r Rect[T]) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of points in r.
func (r Rect[T]) Area() T {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Add returns r translated by v.
func (r Rect[T]) Add(v Vec2[T]) Rect[T] {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Pad returns r grown by n on every side. A negative n shrinks it
// instead, and it is up to the caller to keep the extents
// non-negative.
func (r Rect[T]) Pad(n T) Rect[T] {
	return Rect[T]{
		X: r.X - n,
		Y: r.Y - n,
		W: r.W + 2*n,
		H: r.H + 2*n,
	}
}

// Contains reports whether p lies within r.
func (r Rect[T]) Contains(p Vec2[T]) bool {
	return r.X <= p.X && p.X < r.X+r.W &&
		r.Y <= p.Y && p.Y < r.Y+r.H
}

// Edges returns the set of r's borders that p lies on. If p is not in
// r, the result is EdgeNone. A point in a rectangle that is only one
// wide is on both the left and the right edge.
func (r Rect[T]) Edges(p Vec2[T]) Edges {
	if !r.Contains(p) {
		return EdgeNone
	}

	var e Edges
	if p.Y == r.Y {
		e |= EdgeTop
	}
	if p.Y == r.Y+r.H-1 {
		e |= EdgeBottom
	}
	if p.X == r.X {
		e |= EdgeLeft
	}
	if p.X == r.X+r.W-1 {
		e |= EdgeRight
	}
	return e
}

// Points returns an iterator over every point in r in row-major
// order, with X varying fastest. The iterator may be used any number
// of times.
func (r Rect[T]) Points() iter.Seq[Vec2[T]] {
	return func(yield func(Vec2[T]) bool) {
		for dy := T(0); dy < r.H; dy++ {
			for dx := T(0); dx < r.W; dx++ {
				if !yield(Vec2[T]{X: r.X + dx, Y: r.Y + dy}) {
					return
				}
			}
		}
	}
}

// Hash returns a hash of all of r's fields.
func (r Rect[T]) Hash() uint64 {
	var buf [32]byte
	for i, v := range [...]T{r.X, r.Y, r.W, r.H} {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return xxhash.Sum64(buf[:])
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v, %vx%v)", r.X, r.Y, r.W, r.H)
}

// Box is the three-dimensional counterpart of Rect. It covers the
// half-open ranges [X, X+W), [Y, Y+H), and [Z, Z+D).
type Box[T Integer] struct {
	X, Y, Z, W, H, D T
}

// Bx is shorthand for Box[T]{X: x, Y: y, Z: z, W: w, H: h, D: d}.
func Bx[T Integer](x, y, z, w, h, d T) Box[T] {
	return Box[T]{X: x, Y: y, Z: z, W: w, H: h, D: d}
}

// Min returns the lowest corner of b.
func (b Box[T]) Min() Vec3[T] { return Vec3[T]{X: b.X, Y: b.Y, Z: b.Z} }

// Max returns the corner of b opposite to Min. It is not contained in
// b.
func (b Box[T]) Max() Vec3[T] { return Vec3[T]{X: b.X + b.W, Y: b.Y + b.H, Z: b.Z + b.D} }

// Size returns the extents of b as a vector.
func (b Box[T]) Size() Vec3[T] { return Vec3[T]{X: b.W, Y: b.H, Z: b.D} }

// Empty reports whether b contains no points.
func (b Box[T]) Empty() bool {
	return b.W <= 0 || b.H <= 0 || b.D <= 0
}

// Volume returns the number of points in b.
func (b Box[T]) Volume() T {
	if b.Empty() {
		return 0
	}
	return b.W * b.H * b.D
}

// Pad returns b grown by n on every side.
func (b Box[T]) Pad(n T) Box[T] {
	return Box[T]{
		X: b.X - n,
		Y: b.Y - n,
		Z: b.Z - n,
		W: b.W + 2*n,
		H: b.H + 2*n,
		D: b.D + 2*n,
	}
}

// Contains reports whether p lies within b.
func (b Box[T]) Contains(p Vec3[T]) bool {
	return b.X <= p.X && p.X < b.X+b.W &&
		b.Y <= p.Y && p.Y < b.Y+b.H &&
		b.Z <= p.Z && p.Z < b.Z+b.D
}

// Points returns an iterator over every point in b. Z varies slowest
// and X fastest.
func (b Box[T]) Points() iter.Seq[Vec3[T]] {
	return func(yield func(Vec3[T]) bool) {
		for dz := T(0); dz < b.D; dz++ {
			for dy := T(0); dy < b.H; dy++ {
				for dx := T(0); dx < b.W; dx++ {
					if !yield(Vec3[T]{X: b.X + dx, Y: b.Y + dy, Z: b.Z + dz}) {
						return
					}
				}
			}
		}
	}
}

// Hash returns a hash of all of b's fields.
func (b Box[T]) Hash() uint64 {
	var buf [48]byte
	for i, v := range [...]T{b.X, b.Y, b.Z, b.W, b.H, b.D} {
		binary.LittleEndian.PutUint64(buf[i*8:], uint64(v))
	}
	return xxhash.Sum64(buf[:])
}

func (b Box[T]) String() string {
	return fmt.Sprintf("Box(%v, %v, %v, %vx%vx%v)", b.X, b.Y, b.Z, b.W, b.H, b.D)
}
