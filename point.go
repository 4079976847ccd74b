package kumiko

// Point is an integer image coordinate, origin top-left, y axis downward.
type Point struct {
	X int
	Y int
}

func (p Point) add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
