package geom_test

import (
	"testing"

	"deedles.dev/puzzles/geom"
	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	require.Equal(t, geom.V2(0, -1), geom.Up.Vec())
	require.Equal(t, geom.V2(0, 1), geom.Down.Vec())
	require.Equal(t, geom.V2(-1, 0), geom.Left.Vec())
	require.Equal(t, geom.V2(1, 0), geom.Right.Vec())

	for _, d := range geom.Directions {
		require.Equal(t, geom.V2(0, 0), d.Vec().Add(d.Opposite().Vec()), "%v", d)
		require.Equal(t, d, d.Opposite().Opposite())
	}

	require.Equal(t, geom.Up, geom.Left.Clockwise())
	require.Equal(t, geom.Down, geom.Right.Clockwise())
	require.Equal(t, geom.EdgeBottom, geom.Down.Edge())
	require.Equal(t, geom.EdgeLeft, geom.Left.Edge())
	require.Equal(t, "Up", geom.Up.String())
}

func TestDirectionEdge(t *testing.T) {
	r := geom.Rt(0, 0, 4, 4)
	for p := range r.Points() {
		for _, d := range geom.Directions {
			leaves := !r.Contains(p.Move(d))
			require.Equal(t, leaves, r.Edges(p).Has(d.Edge()), "%v from %v", d, p)
		}
	}
}
