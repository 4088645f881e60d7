package geometry

// Segment is a straight line between two points
type Segment struct {
	A Vector3
	B Vector3
}

// AxisArrows returns the X, Y and Z axis lines of the given length, each
// followed by its two arrow-tip strokes. Tips are length/10 long and lie in
// the XZ plane for X and Z and in the YZ plane for Y.
func AxisArrows(length float64) [3][3]Segment {
	tip := length / 10
	x := NewVector3(length, 0, 0)
	y := NewVector3(0, length, 0)
	z := NewVector3(0, 0, length)

	return [3][3]Segment{
		{
			{Zero, x},
			{x, NewVector3(length-tip, 0, tip)},
			{x, NewVector3(length-tip, 0, -tip)},
		},
		{
			{Zero, y},
			{y, NewVector3(0, length-tip, tip)},
			{y, NewVector3(0, length-tip, -tip)},
		},
		{
			{Zero, z},
			{z, NewVector3(tip, 0, length-tip)},
			{z, NewVector3(-tip, 0, length-tip)},
		},
	}
}
