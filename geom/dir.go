package geom

// Direction is one of the four orthogonal grid directions. Directions
// use screen coordinates, so Up moves towards smaller Y values.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every Direction clockwise, starting from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

var dirVecs = [...]Vec2[int]{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Vec returns the unit vector pointing in the direction d.
func (d Direction) Vec() Vec2[int] {
	return dirVecs[d&3]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// Clockwise returns the direction a quarter turn clockwise from d.
func (d Direction) Clockwise() Direction {
	return (d + 1) & 3
}

// Edge returns the rectangle edge that faces in the direction d.
func (d Direction) Edge() Edges {
	switch d & 3 {
	case Up:
		return EdgeTop
	case Right:
		return EdgeRight
	case Down:
		return EdgeBottom
	default:
		return EdgeLeft
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Direction(?)"
	}
}
