package client

import (
	"time"

	"github.com/tomz197/typedrift/internal/input"
)

// GameState represents the current game phase for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection state outside the game itself.
type ClientState struct {
	Events        []input.KeyEvent // Key presses read this frame
	GameState     GameState        // This client's game phase
	LastScore     int              // Score of the last finished game
	Running       bool             // Client loop running
	delta         time.Duration    // Frame delta time
	shutdownTimer float64          // Countdown before auto-disconnect on shutdown
	isInactive    bool             // Whether the client is in inactive warning state
	reported      int              // Last score sent to the server

	// Previous frame values, used to detect transitions needing a full clear
	prevGameState GameState
	wasInactive   bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
	}
}
