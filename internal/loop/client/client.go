// Package client drives one terminal session: it reads key presses, runs a
// private game on a cell canvas and streams the changed rows back.
package client

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/typedrift/internal/draw"
	"github.com/tomz197/typedrift/internal/input"
	"github.com/tomz197/typedrift/internal/loop"
	"github.com/tomz197/typedrift/internal/loop/config"
	"github.com/tomz197/typedrift/internal/loop/server"
	"github.com/tomz197/typedrift/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.ClientHandle
	state        *ClientState
	game         *loop.Game
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates frame output for chunked writes
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	lastFrame    time.Time
	username     string
	termSizeFunc draw.TermSizeFunc
	tickInterval time.Duration
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Renderer     *lipgloss.Renderer // Color profile of the remote terminal; nil uses stdout's
	Vocabulary   []string           // Words to spawn; empty uses the default list
	GameOptions  []loop.Option
	TickRate     int // Frames per second of the client loop
}

// NewClient creates a new client connected to the given server.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewCanvas(renderWidth, renderHeight, config.CellWidth, config.CellHeight, opts.Renderer)
	canvas.SetOffset(offsetCol, offsetRow)

	vocabulary := opts.Vocabulary
	if len(vocabulary) == 0 {
		vocabulary = object.DefaultVocabulary()
	}
	game := loop.New(canvas, object.NewPool(vocabulary), opts.GameOptions...)

	now := time.Now()
	return &Client{
		server:       gs,
		handle:       gs.RegisterClient(opts.Username),
		state:        NewClientState(),
		game:         game,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    now,
		lastFrame:    now,
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		tickInterval: config.TickInterval(opts.TickRate),
	}
}

// Run starts the client loop. Blocks until the client disconnects or server stops.
func (c *Client) Run() error {
	draw.EnterAltScreen(c.writer)
	defer draw.ExitAltScreen(c.writer)
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	defer c.server.UnregisterClient(c.handle.ID)

	for c.state.Running {
		frameStart := time.Now()

		events := input.ReadEvents(c.inputStream)
		if c.inputStream.Closed() {
			c.state.Running = false
		}

		if err := c.frame(frameStart, events); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < c.tickInterval {
			time.Sleep(c.tickInterval - elapsed)
		}
	}

	c.reportScore()
	draw.ClearScreen(c.writer)
	return nil
}

// frame runs one iteration of the client loop at time now.
func (c *Client) frame(now time.Time, events []input.KeyEvent) error {
	c.state.delta = now.Sub(c.lastFrame)
	c.lastFrame = now

	c.processInput(now, events)
	c.processServerEvents()
	c.updateScreen()

	switch c.state.GameState {
	case GameStateStart:
		c.updateStartState(now)
	case GameStatePlaying:
		c.updatePlayingState(now)
	case GameStateShutdown:
		c.updateShutdownState()
	}

	return c.drawFrame(now)
}

// processInput records this frame's key presses and tracks inactivity.
func (c *Client) processInput(now time.Time, events []input.KeyEvent) {
	c.state.Events = events

	if len(events) > 0 {
		c.lastInput = now
		c.state.isInactive = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityDisconnectUser {
		c.state.Running = false
	} else if now.Sub(c.lastInput).Seconds() > config.InactivityWarnUser {
		c.state.isInactive = true
	}

	for _, ev := range events {
		if ev.IsQuit() {
			c.state.Running = false
		}
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown {
				c.reportScore()
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual cells
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString(draw.SeqClearScreen)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateStartState handles the start screen.
func (c *Client) updateStartState(now time.Time) {
	for _, ev := range c.state.Events {
		switch ev.Code {
		case input.KeyEnter, input.KeySpace:
			c.startGame(now)
			return
		case input.KeyEscape:
			c.state.Running = false
			return
		}
	}
}

// updatePlayingState feeds key presses to the game and advances it one tick.
// Escape ends the game and returns to the start screen.
func (c *Client) updatePlayingState(now time.Time) {
	for i := range c.state.Events {
		ev := &c.state.Events[i]
		if ev.Code == input.KeyEscape {
			c.endGame()
			return
		}
		c.game.HandleInput(ev)
	}

	c.game.Tick(now)
	c.reportScore()
}

// startGame starts or restarts the game.
func (c *Client) startGame(now time.Time) {
	c.game.Init(now)
	c.game.Draw()
	c.state.reported = 0
	c.state.GameState = GameStatePlaying
}

// endGame leaves the current game and shows the start screen.
func (c *Client) endGame() {
	c.reportScore()
	c.state.LastScore = c.game.Score()
	c.state.GameState = GameStateStart
}

// reportScore sends the game score to the server when it changed.
func (c *Client) reportScore() {
	score := c.game.Score()
	if score == c.state.reported {
		return
	}
	c.server.ReportScore(c.handle.ID, score)
	c.state.reported = score
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState() {
	for _, ev := range c.state.Events {
		if ev.Code == input.KeyEscape {
			c.state.Running = false
			return
		}
	}
	c.state.shutdownTimer -= c.state.delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
