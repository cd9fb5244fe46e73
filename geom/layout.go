package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the left one being w wide.
func hsplit[T Integer](r Rect[T], w T) (left, right Rect[T]) {
	w = min(max(w, 0), r.W)
	left = Rect[T]{X: r.X, Y: r.Y, W: w, H: r.H}
	right = Rect[T]{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
	return left, right
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the top one being h high.
func vsplit[T Integer](r Rect[T], h T) (top, bottom Rect[T]) {
	h = min(max(h, 0), r.H)
	top = Rect[T]{X: r.X, Y: r.Y, W: r.W, H: h}
	bottom = Rect[T]{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
	return top, bottom
}

// stack yields first and then n-1 copies of it, each shifted by shift
// from the one before.
func stack[T Integer](first Rect[T], shift Vec2[T], n T) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		cur := first
		for i := T(0); i < n; i++ {
			if !yield(cur) {
				return
			}
			cur = cur.Add(shift)
		}
	}
}

// Rows returns an iterator over the rows of r, top to bottom, as
// rectangles that are each one high.
//
//	for row := range r.Rows() {
//		for p := range row.Points() {
//			fmt.Print(grid[p])
//		}
//		fmt.Println()
//	}
func (r Rect[T]) Rows() iter.Seq[Rect[T]] {
	if r.Empty() {
		return stack(r, Vec2[T]{}, 0)
	}
	row, _ := vsplit(r, 1)
	return stack(row, Vec2[T]{Y: 1}, r.H)
}

// Columns returns an iterator over the columns of r, left to right,
// as rectangles that are each one wide.
func (r Rect[T]) Columns() iter.Seq[Rect[T]] {
	if r.Empty() {
		return stack(r, Vec2[T]{}, 0)
	}
	col, _ := hsplit(r, 1)
	return stack(col, Vec2[T]{X: 1}, r.W)
}

// Layers returns an iterator over the Z slices of b, lowest Z first,
// along with the Z coordinate of each.
func (b Box[T]) Layers() iter.Seq2[T, Rect[T]] {
	return func(yield func(T, Rect[T]) bool) {
		layer := Rect[T]{X: b.X, Y: b.Y, W: b.W, H: b.H}
		for dz := T(0); dz < b.D; dz++ {
			if !yield(b.Z+dz, layer) {
				return
			}
		}
	}
}

// Tiles returns an iterator that splits r into tiles of the given
// size in row-major order. Tiles on the right and bottom borders are
// clipped to fit inside r. If either component of size is not
// positive, nothing is yielded.
func Tiles[T Integer](r Rect[T], size Vec2[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if size.X <= 0 || size.Y <= 0 || r.Empty() {
			return
		}

		for rem := r; rem.H > 0; {
			var row Rect[T]
			row, rem = vsplit(rem, size.Y)
			for rest := row; rest.W > 0; {
				var tile Rect[T]
				tile, rest = hsplit(rest, size.X)
				if !yield(tile) {
					return
				}
			}
		}
	}
}

// Tile fills tiles with the rectangles yielded by [Tiles], stopping
// when either runs out. It returns the number of tiles written.
func Tile[T Integer](tiles []Rect[T], r Rect[T], size Vec2[T]) int {
	return insertTilesFromSeq(tiles, Tiles(r, size))
}

// Grid returns an iterator over every point in r paired with its
// offset from r's top-left corner. This is handy for indexing into a
// slice of rows that was parsed from puzzle input.
func Grid[T Integer](r Rect[T]) iter.Seq2[Vec2[T], Vec2[T]] {
	return func(yield func(Vec2[T], Vec2[T]) bool) {
		origin := r.Min()
		for p := range r.Points() {
			if !yield(p, p.Sub(origin)) {
				return
			}
		}
	}
}

func insertTilesFromSeq[T Integer](tiles []Rect[T], s iter.Seq[Rect[T]]) (n int) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			break
		}
		tiles[i] = t
		n++
	}
	return n
}
