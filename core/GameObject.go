package core

import "fmt"

// Vec2 is a point or vector in playfield units. The origin is the playfield
// center and +Y points up.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player one"
	case Player2:
		return "Player two"
	}
	return fmt.Sprintf("PlayerID(%d)", int(p))
}

// Players lists both sides in tick order.
var Players = [2]PlayerID{Player1, Player2}

type Playfield struct {
	Width, Height float64
}

func (f Playfield) HalfWidth() float64 {
	return f.Width / 2
}

func (f Playfield) HalfHeight() float64 {
	return f.Height / 2
}

// ToScreen maps a playfield point onto a w x h surface whose origin is the
// top-left corner and whose y grows downward.
func (f Playfield) ToScreen(p Vec2, w, h float64) (float64, float64) {
	return (p.X + f.HalfWidth()) * w / f.Width, (f.HalfHeight() - p.Y) * h / f.Height
}

type Paddle struct {
	ID       PlayerID
	Position Vec2
	Width    float64
	Height   float64
	Speed    float64
}

func (p *Paddle) Bounds() Rect {
	return NewRect(p.Position, p.Width, p.Height)
}

type Ball struct {
	Position Vec2
	Velocity Vec2
	Size     float64
}

func (b *Ball) Bounds() Rect {
	return NewRect(b.Position, b.Size, b.Size)
}

// spawnX is the paddle's fixed x: flush against its own wall minus margin.
func spawnX(id PlayerID, field Playfield, width, margin float64) float64 {
	x := field.HalfWidth() - width/2 - margin
	if id == Player1 {
		return -x
	}
	return x
}
