package screen

// Rect is a rectangle of cells. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right is the first column past r.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past r.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks r by n cells on every side, never below zero size.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Centered returns a w×h rectangle centered in r, clamped to r's size.
func (r Rect) Centered(w, h int) Rect {
	if w > r.W {
		w = r.W
	}
	if h > r.H {
		h = r.H
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Row returns the single-row rectangle at y spanning r's width.
func (r Rect) Row(y int) Rect {
	return Rect{X: r.X, Y: y, W: r.W, H: 1}
}
