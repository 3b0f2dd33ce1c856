// Package server tracks the players connected to one process. Every player
// runs an independent game; the server only counts sessions, keeps the
// high-score board and broadcasts shutdown.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// GameServer is the interface clients use to communicate with the server.
// Decouples the Client from the concrete Server implementation, enabling
// testing and potential network-based server implementations.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID, score int)
	Players() int
	TopScores() []ScoreEntry
}

// Server tracks connected clients and their best scores.
type Server struct {
	clients      map[int]*ClientHandle
	nextClientID int
	scores       *Scoreboard
	mu           sync.RWMutex
	logger       *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown)
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// NewServer creates a server that logs through logger.
// A nil logger uses the package-level default.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		scores:       NewScoreboard(topScoreCount),
		logger:       logger,
	}
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	s.logger.Info("notifying clients of shutdown", "players", len(s.clients))
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "remaining", s.Players())
			return
		case <-ticker.C:
			if s.Players() == 0 {
				return
			}
		}
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle

	s.logger.Info("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client from the server and closes its event channel.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, clientID)

	s.logger.Info("client unregistered", "id", clientID, "user", handle.Username, "players", len(s.clients))
}

// ReportScore records a client's current score. Only the best score per
// client is kept on the board.
func (s *Server) ReportScore(clientID, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	s.scores.Record(clientID, handle.Username, score)
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// TopScores returns the best scores seen since the server started.
func (s *Server) TopScores() []ScoreEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scores.Top()
}
