package object

import (
	"math/rand"
	"sort"
	"strings"
)

// Pool is the set of vocabulary words not currently in play.
// Each game owns its own pool.
type Pool struct {
	vocabulary []string            // Full vocabulary, sorted
	available  map[string]struct{} // Words that can be spawned
}

// NewPool creates a pool holding every distinct non-blank word.
// Surrounding whitespace is trimmed.
func NewPool(words []string) *Pool {
	seen := make(map[string]struct{}, len(words))
	vocab := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		vocab = append(vocab, w)
	}
	sort.Strings(vocab)

	p := &Pool{vocabulary: vocab}
	p.Reset()
	return p
}

// Reset makes every vocabulary word available again.
func (p *Pool) Reset() {
	p.available = make(map[string]struct{}, len(p.vocabulary))
	for _, w := range p.vocabulary {
		p.available[w] = struct{}{}
	}
}

// Take removes and returns a uniformly random available word.
// It returns false when the pool is empty.
func (p *Pool) Take(rng *rand.Rand) (string, bool) {
	if len(p.available) == 0 {
		return "", false
	}
	// Iterate the sorted vocabulary so the choice depends only on rng.
	n := rng.Intn(len(p.available))
	for _, w := range p.vocabulary {
		if _, ok := p.available[w]; !ok {
			continue
		}
		if n == 0 {
			delete(p.available, w)
			return w, true
		}
		n--
	}
	return "", false
}

// Return puts a word back. Words outside the vocabulary are ignored.
func (p *Pool) Return(word string) {
	if !p.InVocabulary(word) {
		return
	}
	p.available[word] = struct{}{}
}

// Contains reports whether word is available.
func (p *Pool) Contains(word string) bool {
	_, ok := p.available[word]
	return ok
}

// InVocabulary reports whether word belongs to the pool's vocabulary.
func (p *Pool) InVocabulary(word string) bool {
	i := sort.SearchStrings(p.vocabulary, word)
	return i < len(p.vocabulary) && p.vocabulary[i] == word
}

// Len returns the number of available words.
func (p *Pool) Len() int {
	return len(p.available)
}

// Words returns the available words, sorted.
func (p *Pool) Words() []string {
	out := make([]string, 0, len(p.available))
	for w := range p.available {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Vocabulary returns a copy of the full vocabulary, sorted.
func (p *Pool) Vocabulary() []string {
	out := make([]string, len(p.vocabulary))
	copy(out, p.vocabulary)
	return out
}

// DefaultVocabulary returns the built-in word list.
func DefaultVocabulary() []string {
	return []string{
		"hello", "world", "the", "have", "you",
		"know", "how", "to", "code", "with",
		"reset", "test", "game", "start", "stop",
	}
}
