package geom_test

import (
	"slices"
	"testing"

	"deedles.dev/puzzles/geom"
	"github.com/stretchr/testify/require"
)

var sampleVecs = []geom.Vec2[int]{
	geom.V2(0, 0),
	geom.V2(1, 2),
	geom.V2(-3, 7),
	geom.V2(100, -100),
	geom.V2(-1, -1),
}

func TestVec2Arith(t *testing.T) {
	for _, a := range sampleVecs {
		for _, b := range sampleVecs {
			require.Equal(t, a, a.Add(b).Sub(b))
			require.Equal(t, a.Add(b), b.Add(a))
		}
	}

	require.Equal(t, geom.V2(4, 6), geom.V2(1, 2).Add(geom.V2(3, 4)))
	require.Equal(t, geom.V2(-2, -2), geom.V2(1, 2).Sub(geom.V2(3, 4)))
}

func TestVec2Compare(t *testing.T) {
	require.True(t, geom.V2(5, 0).Less(geom.V2(0, 1)))
	require.True(t, geom.V2(0, 1).Less(geom.V2(1, 1)))
	require.False(t, geom.V2(1, 1).Less(geom.V2(1, 1)))
	require.Zero(t, geom.V2(3, 3).Compare(geom.V2(3, 3)))

	vecs := []geom.Vec2[int]{geom.V2(1, 1), geom.V2(0, 1), geom.V2(2, 0), geom.V2(0, 0)}
	slices.SortFunc(vecs, geom.Vec2[int].Compare)
	require.Equal(t, []geom.Vec2[int]{geom.V2(0, 0), geom.V2(2, 0), geom.V2(0, 1), geom.V2(1, 1)}, vecs)
}

func TestVec3Compare(t *testing.T) {
	require.True(t, geom.V3(9, 9, 0).Less(geom.V3(0, 0, 1)))
	require.True(t, geom.V3(9, 0, 1).Less(geom.V3(0, 1, 1)))
	require.True(t, geom.V3(0, 1, 1).Less(geom.V3(1, 1, 1)))
	require.False(t, geom.V3(1, 1, 1).Less(geom.V3(0, 1, 1)))
	require.False(t, geom.V3(1, 1, 1).Less(geom.V3(1, 1, 1)))
}

func TestVecHash(t *testing.T) {
	for _, a := range sampleVecs {
		b := geom.V2(a.X, a.Y)
		require.Equal(t, a, b)
		require.Equal(t, a.Hash(), b.Hash())
	}
	require.NotEqual(t, geom.V2(1, 2).Hash(), geom.V2(2, 1).Hash())

	require.Equal(t, geom.V3(1, 2, 3).Hash(), geom.V3(1, 2, 3).Hash())
	require.NotEqual(t, geom.V3(1, 2, 3).Hash(), geom.V3(3, 2, 1).Hash())
}

func TestVec3Arith(t *testing.T) {
	a, b := geom.V3(1, -2, 3), geom.V3(-4, 5, 6)
	require.Equal(t, geom.V3(-3, 3, 9), a.Add(b))
	require.Equal(t, a, a.Add(b).Sub(b))
	require.Equal(t, geom.V2(1, -2), a.XY())
}

func TestVecMove(t *testing.T) {
	require.Equal(t,
		[4]geom.Vec2[int]{geom.V2(1, 0), geom.V2(2, 1), geom.V2(1, 2), geom.V2(0, 1)},
		geom.V2(1, 1).Neighbors(),
	)
	require.Equal(t, geom.V2[uint](1, 0), geom.V2[uint](1, 1).Move(geom.Up))
	require.Equal(t, geom.V2[uint](0, 1), geom.V2[uint](1, 1).Move(geom.Left))
}

func TestVecString(t *testing.T) {
	require.Equal(t, "Vec2(1, -2)", geom.V2(1, -2).String())
	require.Equal(t, "Vec3(1, 2, 3)", geom.V3(1, 2, 3).String())
}
