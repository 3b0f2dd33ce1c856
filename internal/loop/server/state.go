package server

import "sort"

// topScoreCount is the number of entries shown on the start screen.
const topScoreCount = 5

// ScoreEntry represents a single entry on the leaderboard.
type ScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// Scoreboard keeps the best score of every client seen, in memory only.
// It is not safe for concurrent use.
type Scoreboard struct {
	best map[int]ScoreEntry
	size int
}

// NewScoreboard creates a board that reports the top size entries.
func NewScoreboard(size int) *Scoreboard {
	return &Scoreboard{
		best: make(map[int]ScoreEntry),
		size: size,
	}
}

// Record stores score for a client if it beats that client's previous best.
// Zero scores are not recorded.
func (b *Scoreboard) Record(clientID int, username string, score int) {
	if score <= 0 {
		return
	}
	if prev, ok := b.best[clientID]; ok && prev.Score >= score {
		return
	}
	b.best[clientID] = ScoreEntry{Username: username, Score: score, clientID: clientID}
}

// Top returns the best entries, highest first. Equal scores keep the
// order in which clients connected.
func (b *Scoreboard) Top() []ScoreEntry {
	entries := make([]ScoreEntry, 0, len(b.best))
	for _, e := range b.best {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].clientID < entries[j].clientID
	})
	if len(entries) > b.size {
		entries = entries[:b.size]
	}
	return entries
}
