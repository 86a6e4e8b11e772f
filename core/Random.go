package core

import (
	"math/rand/v2"
	"time"
)

// Coin is the only source of randomness in a match. Tests substitute a
// scripted sequence.
type Coin interface {
	Flip() bool
}

type randCoin struct {
	r *rand.Rand
}

// NewSeededCoin returns a deterministic coin. Seed 0 seeds from the clock.
func NewSeededCoin(seed uint64) Coin {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randCoin{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (c *randCoin) Flip() bool {
	return c.r.IntN(2) == 0
}

// RandomizeVelocity picks an independent sign per axis at a fixed magnitude.
func RandomizeVelocity(c Coin, speed float64) Vec2 {
	v := Vec2{X: -speed, Y: -speed}
	if c.Flip() {
		v.X = speed
	}
	if c.Flip() {
		v.Y = speed
	}
	return v
}
