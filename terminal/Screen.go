package terminal

import (
	"context"
	"fmt"
	"math"
	"time"

	"Ponk/core"
	"Ponk/logger"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const NetSymbol = 0x2590    // 中線

// Cues receives the events of every tick, e.g. to play sounds.
type Cues interface {
	Play(events []core.Event)
}

type View struct {
	screen   tcell.Screen
	settings core.Settings
	latch    *KeyLatch
}

func NewView(screen tcell.Screen, s core.Settings) *View {
	return &View{
		screen:   screen,
		settings: s,
		latch:    NewKeyLatch(FirstHoldWindow, HoldWindow),
	}
}

func initScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if e := screen.Init(); e != nil {
		return nil, fmt.Errorf("init screen: %w", e)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)
	return screen, nil
}

// Run plays match in the terminal until ctx is done or a quit key is hit.
func Run(ctx context.Context, match *core.Match, cues Cues) error {
	screen, err := initScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	logger.Log.Info(fmt.Sprintf(logger.ScreenInitMsg, w, h))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	view := NewView(screen, match.Settings())
	go view.Listen(cancel)

	runner := core.NewRunner(match.Settings().TickRate)
	view.Draw(match.Frame())
	runner.Run(ctx, func() {
		frame := match.Tick(view.Input(time.Now()))
		if cues != nil {
			cues.Play(frame.Events)
		}
		view.Draw(frame)
	})

	s := runner.Stats
	logger.Log.Info(fmt.Sprintf(logger.TickStatsMsg, s.Count, s.Avg(), s.Min, s.Max))
	return nil
}

// Listen polls screen events until the screen is finalized. A quit key
// calls quit.
func (v *View) Listen(quit func()) {
	//建立一個 goroutine 去監聽鍵盤的事件
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				quit()
				continue
			}
			if a, ok := actionOf(ev); ok {
				v.latch.Press(a, ev.When())
			}
		}
	}
}

func (v *View) Input(now time.Time) core.Input {
	return v.latch.Input(now)
}

// Draw renders one frame: net, paddles, ball and score.
func (v *View) Draw(f core.Frame) {
	v.screen.Clear()
	cols, rows := v.screen.Size()

	//中線
	Print(v.screen, 0, cols/2, 1, rows, NetSymbol)

	//兩個球拍
	for _, id := range core.Players {
		v.fill(f.Paddles[id], v.settings.PaddleWidth, v.settings.PaddleHeight, PaddleSymbol)
	}

	//球
	v.fill(f.Ball, v.settings.BallSize, v.settings.BallSize, BallSymbol)

	//分數更新
	drawScore(v.screen, cols/2, 1, &f.Score)

	v.screen.Show()
}

// fill draws a playfield box as cells, never thinner than one cell.
func (v *View) fill(center core.Vec2, width, height float64, ch rune) {
	cols, rows := v.screen.Size()
	field := v.settings.Field
	top := core.Vec2{X: center.X - width/2, Y: center.Y + height/2}
	x0, y0 := field.ToScreen(top, float64(cols), float64(rows))
	w := math.Max(1, math.Round(width*float64(cols)/field.Width))
	h := math.Max(1, math.Round(height*float64(rows)/field.Height))
	Print(v.screen, int(math.Floor(y0)), int(math.Floor(x0)), int(w), int(h), ch)
}

func Print(screen tcell.Screen, row, col, width, height int, ch rune) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			screen.SetContent(col+c, row+r, ch, nil, tcell.StyleDefault)
		}
	}
}

// drawScore centers the score text on x: both numbers as block digits with
// the fixed separator between them.
func drawScore(screen tcell.Screen, x, y int, score core.ScoreReader) {
	text := score.Score().Text()
	drawLetters(screen, x-textWidth(text)/2, y, text)
}

func drawLetters(screen tcell.Screen, x, y int, word string) {
	offsetX := x
	for _, letter := range word {
		letterCells := GetCellsFromChar(letter)
		if letterCells == nil {
			offsetX++
			continue
		}
		for _, cell := range letterCells {
			screen.SetContent(offsetX+cell[0], y+cell[1], PaddleSymbol, nil, tcell.StyleDefault)
		}
		offsetX += letterWidth + letterGap
	}
}
