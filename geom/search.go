package geom

import (
	"cmp"
	"errors"
	"fmt"
	"iter"

	"deedles.dev/xiter"
)

// ErrNoPoints is returned when a function that needs at least one
// point is given none.
var ErrNoPoints = errors.New("no points")

// NoNearest is returned by [Nearest] when there is no unique nearest
// point.
const NoNearest = -1

// Manhattan returns the sum of the absolute differences between the
// coordinates of p and q.
func Manhattan[T Integer](p, q Vec2[T]) T {
	return p.Manhattan(q)
}

// Manhattan3 is the three-dimensional version of [Manhattan].
func Manhattan3[T Integer](p, q Vec3[T]) T {
	return p.Manhattan(q)
}

// BoundingRect returns the smallest rectangle that contains every one
// of points.
func BoundingRect[T Integer](points ...Vec2[T]) (Rect[T], error) {
	if len(points) == 0 {
		return Rect[T]{}, fmt.Errorf("bounding rect: %w", ErrNoPoints)
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
	}

	return Rect[T]{
		X: lo.X,
		Y: lo.Y,
		W: hi.X - lo.X + 1,
		H: hi.Y - lo.Y + 1,
	}, nil
}

// BoundingBox returns the smallest box that contains every one of
// points.
func BoundingBox[T Integer](points ...Vec3[T]) (Box[T], error) {
	if len(points) == 0 {
		return Box[T]{}, fmt.Errorf("bounding box: %w", ErrNoPoints)
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
		lo.Z, hi.Z = min(lo.Z, p.Z), max(hi.Z, p.Z)
	}

	return Box[T]{
		X: lo.X,
		Y: lo.Y,
		Z: lo.Z,
		W: hi.X - lo.X + 1,
		H: hi.Y - lo.Y + 1,
		D: hi.Z - lo.Z + 1,
	}, nil
}

// Nearest returns the index in points of the point closest to target
// as measured by dist. If more than one point shares the smallest
// distance, or if points is empty, it returns [NoNearest].
//
// Distances are compared exactly, so dist should return integers or
// values that are otherwise safe to compare with ==.
func Nearest[P any, D cmp.Ordered](points iter.Seq[P], target P, dist func(P, P) D) int {
	best, tied := NoNearest, false
	var bestDist D
	for i, p := range xiter.Enumerate(points) {
		d := dist(p, target)
		switch {
		case best == NoNearest || d < bestDist:
			best, bestDist, tied = i, d, false
		case d == bestDist:
			tied = true
		}
	}

	if tied {
		return NoNearest
	}
	return best
}
