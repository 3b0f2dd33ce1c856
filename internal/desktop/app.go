package desktop

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/typedrift/internal/input"
	"github.com/tomz197/typedrift/internal/loop"
	"github.com/tomz197/typedrift/internal/object"
)

// Backspace auto-repeat, in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// App adapts a loop.Game to ebiten.Game.
type App struct {
	width, height int
	surface       *Surface
	game          *loop.Game
	events        []input.KeyEvent
}

var _ ebiten.Game = (*App)(nil)

// NewApp creates a width x height game spawning from pool.
func NewApp(width, height int, pool *object.Pool, opts ...loop.Option) *App {
	surface := NewSurface(width, height)
	game := loop.New(surface, pool, opts...)
	game.Init(time.Now())
	return &App{
		width:   width,
		height:  height,
		surface: surface,
		game:    game,
	}
}

// Game returns the running game.
func (a *App) Game() *loop.Game {
	return a.game
}

// Update feeds this tick's key presses to the game and advances it.
// Escape closes the window.
func (a *App) Update() error {
	for i := range a.readKeys() {
		ev := &a.events[i]
		if ev.Code == input.KeyEscape {
			return ebiten.Termination
		}
		a.game.HandleInput(ev)
	}
	a.game.Tick(time.Now())
	return nil
}

// readKeys collects typed characters and editing keys into a.events.
func (a *App) readKeys() []input.KeyEvent {
	a.events = a.events[:0]

	for _, r := range ebiten.AppendInputChars(nil) {
		a.events = append(a.events, input.FromRune(r))
	}

	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) || (d > repeatDelay && d%repeatInterval == 0) {
		a.events = append(a.events, input.KeyEvent{
			Code: input.KeyBackspace,
			Ctrl: ebiten.IsKeyPressed(ebiten.KeyControl),
		})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.events = append(a.events, input.KeyEvent{Code: input.KeyEscape})
	}
	return a.events
}

// Draw copies the last frame to the screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	screen.DrawImage(a.surface.Image(), nil)
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}
