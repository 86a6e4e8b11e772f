package core

// Rect is an axis-aligned box described by its edges.
type Rect struct {
	Left, Right float64
	Bottom, Top float64
}

// NewRect builds a box of the given size centered on c.
func NewRect(c Vec2, width, height float64) Rect {
	return Rect{
		Left:   c.X - width/2,
		Right:  c.X + width/2,
		Bottom: c.Y - height/2,
		Top:    c.Y + height/2,
	}
}

func (r Rect) Horizontal() Span {
	return Span{Lo: r.Left, Hi: r.Right}
}

func (r Rect) Vertical() Span {
	return Span{Lo: r.Bottom, Hi: r.Top}
}

// Overlaps reports whether r and o share interior area on both axes.
func (r Rect) Overlaps(o Rect) bool {
	return r.Horizontal().Overlaps(o.Horizontal()) && r.Vertical().Overlaps(o.Vertical())
}

// ContainsPoint is inclusive on every edge.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Span is a closed interval on one axis.
type Span struct {
	Lo, Hi float64
}

// ContainsStrict excludes both endpoints.
func (s Span) ContainsStrict(v float64) bool {
	return v > s.Lo && v < s.Hi
}

func (s Span) Overlaps(o Span) bool {
	return s.Lo < o.Hi && o.Lo < s.Hi
}

// Clamp pins v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// escapesTop reports whether the ball's top edge is above the playfield.
func escapesTop(ball Rect, field Playfield) bool {
	return ball.Top > field.HalfHeight()
}

func escapesBottom(ball Rect, field Playfield) bool {
	return ball.Bottom < -field.HalfHeight()
}

// hitsFace reports a paddle hit: the ball's leading edge has crossed the
// paddle's facing edge and one of the ball's two leading corners sits strictly
// inside the paddle's vertical extent.
func hitsFace(ball, paddle Rect, id PlayerID) bool {
	var crossed bool
	switch id {
	case Player1:
		crossed = ball.Left < paddle.Right
	case Player2:
		crossed = ball.Right > paddle.Left
	}
	if !crossed {
		return false
	}
	span := paddle.Vertical()
	return span.ContainsStrict(ball.Top) || span.ContainsStrict(ball.Bottom)
}
