package core

type Direction int

const (
	Down Direction = -1
	Hold Direction = 0
	Up   Direction = 1
)

// DirectionOf resolves a key pair; up wins when both are held.
func DirectionOf(up, down bool) Direction {
	if up {
		return Up
	}
	if down {
		return Down
	}
	return Hold
}

// PaddleController moves one paddle. ClampOffset is the vertical margin used
// for the boundary clamp.
type PaddleController struct {
	Paddle      *Paddle
	Field       Playfield
	ClampOffset float64
}

func (c *PaddleController) Limit() float64 {
	return c.Field.HalfHeight() - c.ClampOffset/2
}

// Update advances the paddle one tick and publishes the post-clamp position.
func (c *PaddleController) Update(dir Direction, dt float64, out PositionWriter) {
	p := c.Paddle
	p.Position.Y += float64(dir) * p.Speed * dt

	//上下邊界
	limit := c.Limit()
	p.Position.Y = Clamp(p.Position.Y, -limit, limit)

	out.Publish(p.ID, p.Position)
}
