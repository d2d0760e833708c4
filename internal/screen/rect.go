package screen

// Point is a cell position on the screen.
type Point struct {
	X int
	Y int
}

// Rect is a cell rectangle. W and H are never negative.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the first column past r.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past r.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Moved returns r translated to (x, y).
func (r Rect) Moved(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}
