package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func quietServer() *Server {
	return NewServer(log.New(io.Discard))
}

func TestRegisterUnregister(t *testing.T) {
	s := quietServer()

	a := s.RegisterClient("ann")
	b := s.RegisterClient("bob")
	if a.ID == b.ID {
		t.Fatalf("duplicate client id %d", a.ID)
	}
	if got := s.Players(); got != 2 {
		t.Errorf("Players() = %d, want 2", got)
	}

	s.UnregisterClient(a.ID)
	if got := s.Players(); got != 1 {
		t.Errorf("Players() = %d, want 1", got)
	}
	if _, ok := <-a.EventsCh; ok {
		t.Error("events channel still open after unregister")
	}

	// Unknown and repeated ids are ignored.
	s.UnregisterClient(a.ID)
	s.UnregisterClient(999)
	if got := s.Players(); got != 1 {
		t.Errorf("Players() = %d, want 1", got)
	}
}

func TestShutdownNotifiesClients(t *testing.T) {
	s := quietServer()
	h := s.RegisterClient("ann")

	go func() {
		ev := <-h.EventsCh
		if ev.Type == EventServerShutdown {
			s.UnregisterClient(h.ID)
		}
	}()

	done := make(chan struct{})
	go func() {
		s.Shutdown(5 * time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Shutdown did not return after the client left")
	}
	if s.Players() != 0 {
		t.Errorf("Players() = %d, want 0", s.Players())
	}
}

func TestShutdownTimeout(t *testing.T) {
	s := quietServer()
	s.RegisterClient("stubborn")

	start := time.Now()
	s.Shutdown(300 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 300*time.Millisecond {
		t.Errorf("Shutdown returned after %v, want at least 300ms", elapsed)
	}
}

func TestReportScore(t *testing.T) {
	s := quietServer()
	a := s.RegisterClient("ann")
	b := s.RegisterClient("bob")

	s.ReportScore(a.ID, 3)
	s.ReportScore(b.ID, 7)
	s.ReportScore(a.ID, 2) // lower than ann's best
	s.ReportScore(999, 50) // unknown client

	top := s.TopScores()
	if len(top) != 2 {
		t.Fatalf("len(TopScores()) = %d, want 2", len(top))
	}
	if top[0].Username != "bob" || top[0].Score != 7 {
		t.Errorf("TopScores()[0] = %+v, want bob 7", top[0])
	}
	if top[1].Username != "ann" || top[1].Score != 3 {
		t.Errorf("TopScores()[1] = %+v, want ann 3", top[1])
	}

	// Scores outlive the session.
	s.UnregisterClient(b.ID)
	if top := s.TopScores(); len(top) != 2 {
		t.Errorf("len(TopScores()) after disconnect = %d, want 2", len(top))
	}
}

func TestScoreboardTop(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		record [][2]int // clientID, score
		want   []int    // client ids, best first
	}{
		{"empty", 3, nil, nil},
		{"zero ignored", 3, [][2]int{{1, 0}}, nil},
		{"highest first", 3, [][2]int{{1, 2}, {2, 9}, {3, 5}}, []int{2, 3, 1}},
		{"ties by id", 3, [][2]int{{4, 5}, {2, 5}, {3, 5}}, []int{2, 3, 4}},
		{"truncated", 2, [][2]int{{1, 1}, {2, 2}, {3, 3}}, []int{3, 2}},
		{"best kept", 3, [][2]int{{1, 8}, {1, 4}, {2, 6}}, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewScoreboard(tt.size)
			for _, r := range tt.record {
				b.Record(r[0], "p", r[1])
			}
			top := b.Top()
			if len(top) != len(tt.want) {
				t.Fatalf("Top() = %+v, want ids %v", top, tt.want)
			}
			for i, id := range tt.want {
				if top[i].clientID != id {
					t.Errorf("Top()[%d] = client %d, want %d", i, top[i].clientID, id)
				}
			}
		})
	}
}
