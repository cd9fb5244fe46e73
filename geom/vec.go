package geom

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Vec2 is a point or displacement on an integer grid. The zero value
// is the origin.
type Vec2[T Integer] struct {
	X, Y T
}

// V2 is shorthand for Vec2[T]{X: x, Y: y}.
func V2[T Integer](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the vector v+w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the vector v-w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Compare orders vectors row-major: by Y and then by X. It returns
// -1, 0, or 1 in the manner of [cmp.Compare], so it can be handed
// directly to slices.SortFunc.
func (v Vec2[T]) Compare(w Vec2[T]) int {
	if c := cmp.Compare(v.Y, w.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.X, w.X)
}

// Less reports whether v sorts before w. See [Vec2.Compare].
func (v Vec2[T]) Less(w Vec2[T]) bool {
	return v.Compare(w) < 0
}

// Manhattan returns the Manhattan distance between v and w.
func (v Vec2[T]) Manhattan(w Vec2[T]) T {
	return absDiff(v.X, w.X) + absDiff(v.Y, w.Y)
}

// Neighbors returns the four orthogonal neighbors of v in the order
// of [Directions].
func (v Vec2[T]) Neighbors() [4]Vec2[T] {
	var n [4]Vec2[T]
	for i, d := range Directions {
		n[i] = v.Move(d)
	}
	return n
}

// Move returns v shifted one step in the direction d.
func (v Vec2[T]) Move(d Direction) Vec2[T] {
	dv := d.Vec()
	// Converting a negative int to an unsigned T wraps, and so does the
	// addition, so this still steps by exactly one.
	return v.Add(Vec2[T]{X: T(dv.X), Y: T(dv.Y)})
}

// Hash returns a hash of v's coordinates. Equal vectors always have
// equal hashes.
func (v Vec2[T]) Hash() uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(v.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(v.Y))
	return xxhash.Sum64(buf[:])
}

func (v Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", v.X, v.Y)
}

// Vec3 is a point or displacement on an integer lattice.
type Vec3[T Integer] struct {
	X, Y, Z T
}

// V3 is shorthand for Vec3[T]{X: x, Y: y, Z: z}.
func V3[T Integer](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the vector v+w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the vector v-w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Compare orders vectors by Z, then Y, then X.
func (v Vec3[T]) Compare(w Vec3[T]) int {
	if c := cmp.Compare(v.Z, w.Z); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Y, w.Y); c != 0 {
		return c
	}
	return cmp.Compare(v.X, w.X)
}

// Less reports whether v sorts before w. See [Vec3.Compare].
func (v Vec3[T]) Less(w Vec3[T]) bool {
	return v.Compare(w) < 0
}

// Manhattan returns the Manhattan distance between v and w.
func (v Vec3[T]) Manhattan(w Vec3[T]) T {
	return absDiff(v.X, w.X) + absDiff(v.Y, w.Y) + absDiff(v.Z, w.Z)
}

// XY drops the Z coordinate of v.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// Hash returns a hash of v's coordinates. Equal vectors always have
// equal hashes.
func (v Vec3[T]) Hash() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(v.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(v.Y))
	binary.LittleEndian.PutUint64(buf[16:], uint64(v.Z))
	return xxhash.Sum64(buf[:])
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.X, v.Y, v.Z)
}

// absDiff returns |a-b| without going negative, so that it also works
// for unsigned types.
func absDiff[T Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
