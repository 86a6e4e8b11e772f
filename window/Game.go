package window

import (
	"fmt"
	"image/color"

	"Ponk/core"
	"Ponk/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const Title = "Ponk!"

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	paddleColor     = color.RGBA{255, 255, 255, 255}
	ballColor       = color.RGBA{255, 255, 255, 255}
	netColor        = color.RGBA{80, 80, 80, 255}
)

// Cues receives the events of every tick.
type Cues interface {
	Play(events []core.Event)
}

// Game adapts a Match to ebiten. ebiten calls Update at the match tick rate
// and Draw once per rendered frame.
type Game struct {
	match *core.Match
	cues  Cues
	frame core.Frame
}

func NewGame(match *core.Match, cues Cues) *Game {
	return &Game{match: match, cues: cues, frame: match.Frame()}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.frame = g.match.Tick(core.Input{
		P1Up:   ebiten.IsKeyPressed(ebiten.KeyW),
		P1Down: ebiten.IsKeyPressed(ebiten.KeyS),
		P2Up:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		P2Down: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	})
	if g.cues != nil {
		g.cues.Play(g.frame.Events)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.match.Settings()
	screen.Fill(backgroundColor)

	w, h := float32(s.Field.Width), float32(s.Field.Height)
	vector.DrawFilledRect(screen, w/2-1, 0, 2, h, netColor, false)

	for _, id := range core.Players {
		g.fillBox(screen, g.frame.Paddles[id], s.PaddleWidth, s.PaddleHeight, paddleColor)
	}
	g.fillBox(screen, g.frame.Ball, s.BallSize, s.BallSize, ballColor)

	drawScore(screen, int(s.Field.Width)/2, &g.frame.Score)
}

// drawScore centers the score text on x. DebugPrint glyphs are 6px wide.
func drawScore(screen *ebiten.Image, x int, score core.ScoreReader) {
	text := score.Score().Text()
	ebitenutil.DebugPrintAt(screen, text, x-len(text)*3, 16)
}

func (g *Game) fillBox(screen *ebiten.Image, center core.Vec2, width, height float64, clr color.Color) {
	field := g.match.Settings().Field
	top := core.Vec2{X: center.X - width/2, Y: center.Y + height/2}
	x, y := field.ToScreen(top, field.Width, field.Height)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// Layout keeps the logical screen equal to the playfield; ebiten scales it
// to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	f := g.match.Settings().Field
	return int(f.Width), int(f.Height)
}

// Run opens the window and blocks until it is closed.
func Run(match *core.Match, cues Cues) error {
	s := match.Settings()
	ebiten.SetWindowSize(int(s.Field.Width), int(s.Field.Height))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(s.TickRate)
	logger.Log.Info(fmt.Sprintf(logger.WindowInitMsg, int(s.Field.Width), int(s.Field.Height)))

	if err := ebiten.RunGame(NewGame(match, cues)); err != nil && err != ebiten.Termination {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
