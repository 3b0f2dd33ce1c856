// Package loop implements the typing game: word spawning, drift, matching,
// difficulty scaling and frame-paced drawing onto a draw.Surface.
//
// A Game does no scheduling of its own. A driver calls Tick once per frame
// with the current time and feeds key presses through HandleInput; both must
// be called from the same goroutine.
package loop

import (
	"math"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/tomz197/typedrift/internal/draw"
	"github.com/tomz197/typedrift/internal/loop/config"
	"github.com/tomz197/typedrift/internal/object"
)

// Game holds all state of one running game.
type Game struct {
	surface   draw.Surface
	pool      *object.Pool
	rng       *rand.Rand
	curve     Curve
	topOffset float64
	debug     bool

	words       []*object.Word // In play, in spawn order
	score       int
	playerInput string
	spawned     bool // A word has been spawned since Init
	lastSpawn   time.Time
	delay       time.Duration // Current spawn delay
	speed       float64       // Current drift speed

	// Frame pacing
	fps         int
	fpsInterval time.Duration
	then        time.Time // Time of the last draw, aligned to the frame grid
	startTime   time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithCurve sets the difficulty curve.
func WithCurve(c Curve) Option {
	return func(g *Game) { g.curve = c }
}

// WithRand sets the random source used for word choice and placement.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithTopOffset reserves px pixels at the top of the surface for the HUD.
func WithTopOffset(px float64) Option {
	return func(g *Game) { g.topOffset = px }
}

// WithFPS caps how often Tick draws.
func WithFPS(fps int) Option {
	return func(g *Game) {
		if fps > 0 {
			g.fps = fps
		}
	}
}

// WithDebug enables the timing overlay.
func WithDebug(on bool) Option {
	return func(g *Game) { g.debug = on }
}

// New creates a game drawing onto surface and spawning from pool.
// A nil pool uses the default vocabulary. Call Init before the first Tick.
func New(surface draw.Surface, pool *object.Pool, opts ...Option) *Game {
	if pool == nil {
		pool = object.NewPool(object.DefaultVocabulary())
	}
	g := &Game{
		surface:   surface,
		pool:      pool,
		curve:     DefaultCurve(),
		topOffset: config.TopOffset,
		fps:       config.TargetFPS,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.fpsInterval = time.Second / time.Duration(g.fps)
	return g
}

// Init resets the game to its starting state at time now.
func (g *Game) Init(now time.Time) {
	g.words = g.words[:0]
	g.pool.Reset()
	g.score = 0
	g.playerInput = ""
	g.spawned = false
	g.lastSpawn = time.Time{}
	g.delay = g.curve.SpawnDelay(0)
	g.speed = g.curve.DriftSpeed(0)

	g.then = now
	g.startTime = now
}

// Tick runs one frame: Update always, then Draw if more than one frame
// interval has passed since the last draw. It reports whether it drew.
func (g *Game) Tick(now time.Time) bool {
	g.Update(now)

	elapsed := now.Sub(g.then)
	if elapsed <= g.fpsInterval {
		return false
	}
	g.then = now.Add(-(elapsed % g.fpsInterval))
	g.Draw()
	return true
}

// Update advances the simulation by one tick:
// spawn, drift, drop exited words, rescale difficulty, match input.
func (g *Game) Update(now time.Time) {
	g.spawnWord(now)
	g.updateWords()

	g.delay = g.curve.SpawnDelay(g.score)
	g.speed = g.curve.DriftSpeed(g.score)

	g.playerInput = strings.TrimSpace(g.playerInput)
	g.matchInput()
}

// spawnWord adds a random word from the pool when the spawn delay has passed.
// An empty pool skips the spawn and leaves the timer untouched.
func (g *Game) spawnWord(now time.Time) {
	if g.spawned && now.Sub(g.lastSpawn) <= g.delay {
		return
	}
	text, ok := g.pool.Take(g.rng)
	if !ok {
		return
	}
	band := math.Max(0, g.surface.Height()-g.topOffset)
	y := g.rng.Float64()*band + g.topOffset

	g.words = append(g.words, object.NewWord(text, y))
	g.lastSpawn = now
	g.spawned = true
}

// updateWords drifts every word and removes those past the right edge,
// returning their text to the pool.
func (g *Game) updateWords() {
	ctx := object.UpdateContext{
		Speed:  g.speed,
		Bounds: object.BoundsOf(g.surface),
	}

	kept := g.words[:0] // reuse backing array
	for _, w := range g.words {
		remove, _ := w.Update(ctx)
		if remove {
			g.pool.Return(w.Text)
			continue
		}
		kept = append(kept, w)
	}
	clear(g.words[len(kept):])
	g.words = kept
}

// matchInput clears the word equal to the player's input, if any.
func (g *Game) matchInput() {
	if g.playerInput == "" {
		return
	}
	for i, w := range g.words {
		if w.Text != g.playerInput {
			continue
		}
		g.score++
		g.playerInput = ""
		g.pool.Return(w.Text)
		g.words = slices.Delete(g.words, i, i+1)
		return
	}
}

// Score returns the number of words cleared.
func (g *Game) Score() int {
	return g.score
}

// Input returns the current input buffer.
func (g *Game) Input() string {
	return g.playerInput
}

// Delay returns the spawn delay computed on the last update.
func (g *Game) Delay() time.Duration {
	return g.delay
}

// Speed returns the drift speed computed on the last update.
func (g *Game) Speed() float64 {
	return g.speed
}

// Pool returns the game's vocabulary pool.
func (g *Game) Pool() *object.Pool {
	return g.pool
}

// Uptime returns how long the game has run as of now.
func (g *Game) Uptime(now time.Time) time.Duration {
	return now.Sub(g.startTime)
}

// WordsInPlay returns a snapshot of the words on screen, in spawn order.
func (g *Game) WordsInPlay() []object.Word {
	out := make([]object.Word, len(g.words))
	for i, w := range g.words {
		out[i] = *w
	}
	return out
}
