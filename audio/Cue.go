package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"Ponk/core"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(48000)

// cue is one short blip.
type cue struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var cues = map[core.EventKind]cue{
	core.WallBounce:   {freq: 440, duration: 40 * time.Millisecond, volume: -1},
	core.PaddleBounce: {freq: 660, duration: 60 * time.Millisecond, volume: -0.5},
	core.Scored:       {freq: 220, duration: 250 * time.Millisecond, volume: 0},
}

// Tone is an endless sine wave with a short attack so blips don't click.
type Tone struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewTone(sr beep.SampleRate, freq float64) *Tone {
	return &Tone{sr: sr, freq: freq}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Tone) Err() error {
	return nil
}

// Blip returns the finite streamer played for an event kind, or nil when the
// kind has no sound.
func Blip(kind core.EventKind) beep.Streamer {
	c, ok := cues[kind]
	if !ok {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(SampleRate.N(c.duration), NewTone(SampleRate, c.freq)),
		Base:     2,
		Volume:   c.volume,
	}
}

// Player mixes match event blips onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one blip per event. It never blocks the tick.
func (p *Player) Play(events []core.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(events) == 0 {
		return
	}
	speaker.Lock()
	for _, ev := range events {
		if s := Blip(ev.Kind); s != nil {
			p.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
