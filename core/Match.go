package core

import (
	"fmt"

	"Ponk/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const PaddleWidth = 30     // 球拍寬度
const PaddleHeight = 150   // 球拍高度
const PaddleSpeed = 500    // 球拍速度 (units/s)
const PaddleMargin = 10    // 球拍與牆的距離
const BallSize = 30        // 球大小
const BallSpeed = 400      // 球速 (units/s)
const TickRate = 60        // 每秒更新次數
const PlayfieldWidth = 1280
const PlayfieldHeight = 720

// Settings fixes the geometry of a match. None of it changes once the match
// has started.
type Settings struct {
	Field        Playfield
	PaddleWidth  float64
	PaddleHeight float64
	PaddleSpeed  float64
	PaddleMargin float64
	ClampOffset  float64
	BallSize     float64
	BallSpeed    float64
	TickRate     int

	// ParallelPaddles runs both paddle controllers concurrently and joins
	// them before the ball phase.
	ParallelPaddles bool
}

func DefaultSettings() Settings {
	return Settings{
		Field:        Playfield{Width: PlayfieldWidth, Height: PlayfieldHeight},
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleSpeed:  PaddleSpeed,
		PaddleMargin: PaddleMargin,
		ClampOffset:  PaddleHeight,
		BallSize:     BallSize,
		BallSpeed:    BallSpeed,
		TickRate:     TickRate,
	}
}

// DeltaTime is the fixed step every tick advances by.
func (s Settings) DeltaTime() float64 {
	return 1 / float64(s.TickRate)
}

// Input is the key state sampled at the start of a tick.
type Input struct {
	P1Up, P1Down bool
	P2Up, P2Down bool
}

func (in Input) Direction(id PlayerID) Direction {
	if id == Player1 {
		return DirectionOf(in.P1Up, in.P1Down)
	}
	return DirectionOf(in.P2Up, in.P2Down)
}

// Frame is what presentation reads after a tick.
type Frame struct {
	Tick    uint64
	Paddles [2]Vec2
	Ball    Vec2
	Score   Scoreboard
	Events  []Event
}

type Match struct {
	ID string

	settings  Settings
	paddles   [2]Paddle
	ball      Ball
	state     State
	paddleCtl [2]PaddleController
	ballCtl   BallController
	tick      uint64
	log       *logger.Logger
}

// NewMatch spawns both paddles and the ball.
func NewMatch(s Settings, coin Coin) *Match {
	m := &Match{
		ID:       uuid.NewString(),
		settings: s,
	}
	m.log = logger.Log.WithField("match", m.ID)

	for _, id := range Players {
		m.paddles[id] = Paddle{
			ID:       id,
			Position: Vec2{X: spawnX(id, s.Field, s.PaddleWidth, s.PaddleMargin)},
			Width:    s.PaddleWidth,
			Height:   s.PaddleHeight,
			Speed:    s.PaddleSpeed,
		}
		m.paddleCtl[id] = PaddleController{
			Paddle:      &m.paddles[id],
			Field:       s.Field,
			ClampOffset: s.ClampOffset,
		}
		m.state.Publish(id, m.paddles[id].Position)
	}

	m.ball = Ball{Size: s.BallSize}
	m.ballCtl = BallController{
		Ball:         &m.ball,
		Field:        s.Field,
		PaddleWidth:  s.PaddleWidth,
		PaddleHeight: s.PaddleHeight,
		BaseSpeed:    s.BallSpeed,
		Coin:         coin,
	}
	m.ballCtl.Reset()

	m.log.Info(fmt.Sprintf(logger.MatchStartMsg, s.Field.Width, s.Field.Height, m.ball.Velocity))
	return m
}

func (m *Match) mustInit() {
	if m == nil || m.ballCtl.Ball == nil {
		panic("core: match used before NewMatch")
	}
}

// Tick advances the whole simulation by one fixed step. Both paddles are
// updated and published before the ball reads them.
func (m *Match) Tick(in Input) Frame {
	m.mustInit()
	dt := m.settings.DeltaTime()

	//兩個球拍
	if m.settings.ParallelPaddles {
		var g errgroup.Group
		for i := range m.paddleCtl {
			ctl := &m.paddleCtl[i]
			dir := in.Direction(ctl.Paddle.ID)
			g.Go(func() error {
				ctl.Update(dir, dt, &m.state.Snapshot)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range m.paddleCtl {
			ctl := &m.paddleCtl[i]
			ctl.Update(in.Direction(ctl.Paddle.ID), dt, &m.state.Snapshot)
		}
	}

	//球
	events := m.ballCtl.Update(dt, &m.state.Snapshot, &m.state.Scoreboard, nil)
	m.tick++

	frame := m.frame(events)
	m.logEvents(frame)
	return frame
}

func (m *Match) logEvents(f Frame) {
	for _, ev := range f.Events {
		switch ev.Kind {
		case Scored:
			m.log.Info(fmt.Sprintf(logger.ScoredMsg, ev.Player, f.Score.P1, f.Score.P2))
		case PaddleBounce:
			m.log.Debug(fmt.Sprintf(logger.PaddleBounceMsg, ev.Player, f.Ball))
		case WallBounce:
			m.log.Debug(fmt.Sprintf(logger.WallBounceMsg, f.Ball))
		}
	}
	if m.log.Enabled(logrus.TraceLevel) {
		m.log.Trace(f.Payload())
	}
}

func (m *Match) frame(events []Event) Frame {
	return Frame{
		Tick:    m.tick,
		Paddles: [2]Vec2{m.paddles[Player1].Position, m.paddles[Player2].Position},
		Ball:    m.ball.Position,
		Score:   m.state.Score(),
		Events:  events,
	}
}

// Frame returns the current positions and score without advancing.
func (m *Match) Frame() Frame {
	m.mustInit()
	return m.frame(nil)
}

func (m *Match) Paddle(id PlayerID) Paddle {
	m.mustInit()
	return m.paddles[id]
}

func (m *Match) Ball() Ball {
	m.mustInit()
	return m.ball
}

var _ ScoreReader = (*Match)(nil)

func (m *Match) Score() Scoreboard {
	m.mustInit()
	return m.state.Score()
}

func (m *Match) Settings() Settings {
	m.mustInit()
	return m.settings
}
