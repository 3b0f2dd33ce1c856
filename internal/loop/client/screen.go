package client

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomz197/typedrift/internal/draw"
	"github.com/tomz197/typedrift/internal/loop/config"
)

// Screen text styles. Sizes of 32 and up render bold on the terminal canvas.
var (
	titleStyle = draw.TextStyle{Font: draw.Font{Size: 48, Family: draw.MonoFamily}, Color: draw.ColorBlue}
	bodyStyle  = draw.TextStyle{Font: draw.Font{Size: 24, Family: draw.MonoFamily}, Color: draw.ColorWhite}
	hintStyle  = draw.TextStyle{Font: draw.Font{Size: 24, Family: draw.MonoFamily}, Color: draw.ColorGray}
	alertStyle = draw.TextStyle{Font: draw.Font{Size: 48, Family: draw.MonoFamily}, Color: draw.ColorWhite}
)

// titleArt is "TYPEDRIFT" in figlet's "small" font.
var titleArt = []string{
	` _______   _____ ___ ___  ___ ___ ___ _____ `,
	`|_   _\ \ / / _ \ __|   \| _ \_ _| __|_   _|`,
	`  | |  \ V /|  _/ _|| |) |   /| || _|  | |  `,
	`  |_|   |_| |_| |___|___/|_|_\___|_|   |_|  `,
}

// drawFrame renders the current frame to the terminal.
func (c *Client) drawFrame(now time.Time) error {
	// On game state or inactivity transitions, do a full terminal clear
	// so content from the previous state doesn't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	if stateChanged || inactiveChanged {
		c.chunkWriter.WriteString(draw.SeqClearScreen)
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
	}

	switch c.state.GameState {
	case GameStateStart:
		c.canvas.Clear()
		c.drawStartScreen(now)
	case GameStateShutdown:
		c.canvas.Clear()
		c.drawShutdownScreen()
	case GameStatePlaying:
		// The game draws itself on Tick.
	}
	if c.state.isInactive {
		c.drawInactivityScreen(now)
	}

	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	return c.chunkWriter.Flush()
}

// writeRow draws s starting at a 0-based cell position.
func (c *Client) writeRow(col, row int, s string, style draw.TextStyle) {
	c.canvas.FillText(s, float64(col*config.CellWidth), float64((row+1)*config.CellHeight), style)
}

// writeCentered draws s horizontally centered on a 0-based row.
func (c *Client) writeCentered(row int, s string, style draw.TextStyle) {
	col := (c.canvas.TerminalWidth() - utf8.RuneCountInString(s)) / 2
	c.writeRow(col, row, s, style)
}

// drawStartScreen draws the title screen with controls and the high scores.
func (c *Client) drawStartScreen(now time.Time) {
	centerY := c.canvas.TerminalHeight() / 2

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		titleWidth = max(titleWidth, utf8.RuneCountInString(line))
	}

	titleStartY := centerY - 10
	titleCol := (c.canvas.TerminalWidth() - titleWidth) / 2
	for i, line := range titleArt {
		c.writeRow(titleCol, titleStartY+i, line, titleStyle)
	}

	row := titleStartY + len(titleArt) + 1
	c.writeCentered(row, "~ Type the words before they drift away ~", bodyStyle)

	row += 2
	c.writeCentered(row, "Controls", bodyStyle)
	controlLines := []string{
		"a-z  . . . . . . . .  Type",
		"Backspace  . . . .  Delete",
		"Ctrl+W / Ctrl+U  . . Clear",
		"ESC  . . . . . . . .  Menu",
		"Ctrl+C . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.writeCentered(row+1+i, line, hintStyle)
	}
	row += len(controlLines) + 2

	// Blinking start prompt
	if now.UnixMilli()/600%2 == 0 {
		c.writeCentered(row, ">>  Press ENTER to Start  <<", alertStyle)
	}
	row += 2

	if c.state.LastScore > 0 {
		c.writeCentered(row, fmt.Sprintf("Last score: %d", c.state.LastScore), bodyStyle)
		row++
	}
	c.writeCentered(row, fmt.Sprintf("Players online: %d", c.server.Players()), hintStyle)
	row += 2

	top := c.server.TopScores()
	if len(top) == 0 {
		return
	}
	c.writeCentered(row, "High scores", bodyStyle)
	for i, entry := range top {
		line := fmt.Sprintf("%d. %-*s %5d", i+1, config.MaxUsernameLength, truncateName(entry.Username), entry.Score)
		c.writeCentered(row+1+i, line, hintStyle)
	}
}

// drawInactivityScreen draws the inactivity warning over whatever is on the canvas.
func (c *Client) drawInactivityScreen(now time.Time) {
	centerY := c.canvas.TerminalHeight() / 2
	band := float64(5 * config.CellHeight)
	c.canvas.FillRect(0, float64((centerY-2)*config.CellHeight), c.canvas.Width(), band, draw.ColorBlack)

	c.writeCentered(centerY-2, "INACTIVITY WARNING", alertStyle)
	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(config.InactivityDisconnectUser-now.Sub(c.lastInput).Seconds()),
	)
	c.writeCentered(centerY, msg, bodyStyle)
	c.writeCentered(centerY+2, "Press any key to continue", hintStyle)
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen() {
	centerY := c.canvas.TerminalHeight() / 2

	c.writeCentered(centerY-3, "SERVER SHUTTING DOWN", alertStyle)
	c.writeCentered(centerY-1, "The server is restarting for maintenance.", bodyStyle)
	c.writeCentered(centerY, "Please reconnect in a moment.", bodyStyle)

	remaining := int(c.state.shutdownTimer) + 1
	c.writeCentered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining), bodyStyle)
	c.writeCentered(centerY+4, "Press ESC to disconnect now", hintStyle)
}

// truncateName shortens a username to the display limit.
func truncateName(name string) string {
	if utf8.RuneCountInString(name) <= config.MaxUsernameLength {
		return name
	}
	return string([]rune(name)[:config.MaxUsernameLength-1]) + "…"
}
