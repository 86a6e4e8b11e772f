package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedInput varies both paddles over time so replays exercise movement.
func scriptedInput(tick int) Input {
	return Input{
		P1Up:   tick%90 < 40,
		P1Down: tick%90 >= 50,
		P2Up:   tick%70 >= 35,
		P2Down: tick%70 < 30,
	}
}

func TestNewMatchSpawns(t *testing.T) {
	m := NewMatch(DefaultSettings(), &scriptedCoin{flips: []bool{true, false}})

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, Vec2{X: -615}, m.Paddle(Player1).Position)
	assert.Equal(t, Vec2{X: 615}, m.Paddle(Player2).Position)
	assert.Equal(t, Vec2{}, m.Ball().Position)
	assert.Equal(t, Vec2{X: 400, Y: -400}, m.Ball().Velocity)

	f := m.Frame()
	assert.Equal(t, uint64(0), f.Tick)
	assert.Equal(t, Scoreboard{}, f.Score)
	assert.Equal(t, [2]Vec2{{X: -615}, {X: 615}}, f.Paddles)
}

func TestMatchPaddlesStayInsideLimit(t *testing.T) {
	m := NewMatch(DefaultSettings(), NewSeededCoin(1))
	limit := 360.0 - 75.0

	for i := 0; i < 120; i++ {
		f := m.Tick(Input{P1Up: true, P2Down: true})
		assert.LessOrEqual(t, math.Abs(f.Paddles[Player1].Y), limit)
		assert.LessOrEqual(t, math.Abs(f.Paddles[Player2].Y), limit)
	}
	assert.Equal(t, limit, m.Paddle(Player1).Position.Y)
	assert.Equal(t, -limit, m.Paddle(Player2).Position.Y)
}

func TestMatchScoresAndKeepsSpeed(t *testing.T) {
	m := NewMatch(DefaultSettings(), NewSeededCoin(5))

	scored := 0
	prev := m.Score()
	for i := 0; i < 3000; i++ {
		f := m.Tick(Input{P1Up: true, P2Down: true})

		assert.GreaterOrEqual(t, f.Score.P1, prev.P1)
		assert.GreaterOrEqual(t, f.Score.P2, prev.P2)
		assert.LessOrEqual(t, (f.Score.P1-prev.P1)+(f.Score.P2-prev.P2), 1, "tick %d", i)
		assert.Equal(t, 400.0, math.Abs(m.Ball().Velocity.X))
		assert.Equal(t, 400.0, math.Abs(m.Ball().Velocity.Y))

		tickScored := 0
		for _, ev := range f.Events {
			if ev.Kind == Scored {
				tickScored++
				assert.Equal(t, Vec2{}, f.Ball, "ball recentred on the scoring tick")
			}
		}
		assert.LessOrEqual(t, tickScored, 1, "tick %d", i)
		assert.Equal(t, tickScored, (f.Score.P1-prev.P1)+(f.Score.P2-prev.P2))
		scored += tickScored
		prev = f.Score
	}
	assert.Greater(t, scored, 10)
	assert.Equal(t, scored, prev.P1+prev.P2)
}

func TestMatchIsDeterministicForASeed(t *testing.T) {
	a := NewMatch(DefaultSettings(), NewSeededCoin(99))
	b := NewMatch(DefaultSettings(), NewSeededCoin(99))
	require.NotEqual(t, a.ID, b.ID)

	for i := 0; i < 3000; i++ {
		in := scriptedInput(i)
		require.Equal(t, a.Tick(in), b.Tick(in), "tick %d", i)
	}
}

func TestParallelPaddlesMatchSerial(t *testing.T) {
	parallel := DefaultSettings()
	parallel.ParallelPaddles = true

	serial := NewMatch(DefaultSettings(), NewSeededCoin(11))
	concurrent := NewMatch(parallel, NewSeededCoin(11))

	for i := 0; i < 2000; i++ {
		in := scriptedInput(i)
		require.Equal(t, serial.Tick(in), concurrent.Tick(in), "tick %d", i)
	}
}

func TestBallSeesThisTicksPaddlePosition(t *testing.T) {
	setup := func() *Match {
		m := NewMatch(DefaultSettings(), &scriptedCoin{flips: []bool{true}})
		m.ball.Position = Vec2{X: 580, Y: 95}
		m.ball.Velocity = Vec2{X: 400}
		return m
	}

	// The ball's bottom edge only enters the paddle after the paddle moves up.
	still := setup().Tick(Input{})
	assert.Empty(t, still.Events)

	moved := setup()
	f := moved.Tick(Input{P2Up: true})
	assert.Equal(t, []Event{{Kind: PaddleBounce, Player: Player2}}, f.Events)
	assert.Equal(t, -400.0, moved.Ball().Velocity.X)
}

func TestMatchTickAdvances(t *testing.T) {
	m := NewMatch(DefaultSettings(), NewSeededCoin(2))

	for i := 1; i <= 5; i++ {
		assert.Equal(t, uint64(i), m.Tick(Input{}).Tick)
	}
}

func TestUninitialisedMatchPanics(t *testing.T) {
	var nilMatch *Match
	assert.Panics(t, func() { nilMatch.Tick(Input{}) })
	assert.Panics(t, func() { (&Match{}).Frame() })
	assert.Panics(t, func() { (&Match{}).Score() })
	assert.PanicsWithValue(t, "core: match used before NewMatch", func() { (&Match{}).Settings() })
}

func TestInputDirection(t *testing.T) {
	in := Input{P1Down: true, P2Up: true, P2Down: true}

	assert.Equal(t, Down, in.Direction(Player1))
	assert.Equal(t, Up, in.Direction(Player2))
}

func TestSettingsDeltaTime(t *testing.T) {
	assert.InDelta(t, 1.0/60, DefaultSettings().DeltaTime(), 1e-12)
}
