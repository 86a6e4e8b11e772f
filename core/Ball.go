package core

type EventKind int

const (
	WallBounce EventKind = iota
	PaddleBounce
	Scored
)

func (k EventKind) String() string {
	switch k {
	case WallBounce:
		return "wall bounce"
	case PaddleBounce:
		return "paddle bounce"
	case Scored:
		return "scored"
	}
	return "unknown"
}

// Event is a boundary crossing observed during a tick. Player is the paddle
// that was hit or the side that scored; it is unused for wall bounces.
type Event struct {
	Kind   EventKind
	Player PlayerID
}

// BallController owns the ball. PaddleWidth and PaddleHeight describe the
// paddles whose positions arrive through the snapshot.
type BallController struct {
	Ball         *Ball
	Field        Playfield
	PaddleWidth  float64
	PaddleHeight float64
	BaseSpeed    float64
	Coin         Coin
}

// Update advances the ball one tick and appends what happened to events.
func (c *BallController) Update(dt float64, paddles PositionReader, score ScoreWriter, events []Event) []Event {
	b := c.Ball
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	box := b.Bounds()

	//檢查有沒有撞到上下牆壁
	if escapesTop(box, c.Field) {
		b.Velocity.Y = -b.Velocity.Y
		events = append(events, Event{Kind: WallBounce})
	} else if escapesBottom(box, c.Field) {
		b.Velocity.Y = -b.Velocity.Y
		events = append(events, Event{Kind: WallBounce})
	}

	//檢查是否有碰到球拍
	for _, id := range Players {
		paddle := NewRect(paddles.PaddleAt(id), c.PaddleWidth, c.PaddleHeight)
		if hitsFace(box, paddle, id) {
			b.Velocity.X = -b.Velocity.X
			events = append(events, Event{Kind: PaddleBounce, Player: id})
		}
	}

	if scorer, ok := c.outside(box); ok {
		score.Award(scorer)
		c.Reset()
		events = append(events, Event{Kind: Scored, Player: scorer})
	}
	return events
}

// outside reports which player earns the point when the ball leaves the
// playfield horizontally.
func (c *BallController) outside(box Rect) (PlayerID, bool) {
	if box.Right > c.Field.HalfWidth() {
		return Player1, true
	}
	if box.Left < -c.Field.HalfWidth() {
		return Player2, true
	}
	return 0, false
}

// Reset recenters the ball with a freshly drawn velocity.
func (c *BallController) Reset() {
	c.Ball.Position = Vec2{}
	c.Ball.Velocity = RandomizeVelocity(c.Coin, c.BaseSpeed)
}
