package core

import (
	"strconv"
	"strings"
)

// ScoreSeparator sits between the two score fields on screen.
var ScoreSeparator = strings.Repeat(" ", 24)

type Scoreboard struct {
	P1, P2 int
}

func (s *Scoreboard) Award(id PlayerID) {
	switch id {
	case Player1:
		s.P1++
	case Player2:
		s.P2++
	}
}

func (s *Scoreboard) Score() Scoreboard {
	return *s
}

func (s Scoreboard) Of(id PlayerID) int {
	if id == Player1 {
		return s.P1
	}
	return s.P2
}

func (s Scoreboard) Text() string {
	return strconv.Itoa(s.P1) + ScoreSeparator + strconv.Itoa(s.P2)
}

// Snapshot is the last published position of each paddle, decoupled from the
// paddles themselves so the ball phase only ever sees post-clamp values.
type Snapshot struct {
	paddles [2]Vec2
}

func (s *Snapshot) Publish(id PlayerID, pos Vec2) {
	s.paddles[id] = pos
}

func (s *Snapshot) PaddleAt(id PlayerID) Vec2 {
	return s.paddles[id]
}

// PositionWriter is the paddle phase's view of the match state.
type PositionWriter interface {
	Publish(id PlayerID, pos Vec2)
}

// PositionReader is the ball phase's view of paddle positions.
type PositionReader interface {
	PaddleAt(id PlayerID) Vec2
}

// ScoreWriter is the ball phase's view of the scoreboard.
type ScoreWriter interface {
	Award(id PlayerID)
}

// ScoreReader is what presentation needs to render the score.
type ScoreReader interface {
	Score() Scoreboard
}

// State is the mutable match state threaded through every tick.
type State struct {
	Scoreboard
	Snapshot
}
