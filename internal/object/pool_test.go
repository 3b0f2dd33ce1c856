package object

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestNewPoolDedupes(t *testing.T) {
	p := NewPool([]string{"reset", "test", " reset ", "", "   ", "game"})
	want := []string{"game", "reset", "test"}
	if got := p.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if got := p.Vocabulary(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vocabulary() = %v, want %v", got, want)
	}
}

func TestDefaultVocabularyUnique(t *testing.T) {
	words := DefaultVocabulary()
	if got := NewPool(words).Len(); got != len(words) {
		t.Errorf("pool has %d words, vocabulary lists %d", got, len(words))
	}
}

func TestPoolTakeAndReturn(t *testing.T) {
	p := NewPool([]string{"a", "b", "c"})
	rng := rand.New(rand.NewSource(1))

	taken := map[string]bool{}
	for i := 0; i < 3; i++ {
		w, ok := p.Take(rng)
		if !ok {
			t.Fatalf("Take %d failed with %d left", i, p.Len())
		}
		if taken[w] {
			t.Fatalf("word %q taken twice", w)
		}
		if p.Contains(w) {
			t.Fatalf("taken word %q still available", w)
		}
		taken[w] = true
	}

	if _, ok := p.Take(rng); ok {
		t.Error("Take on empty pool should fail")
	}

	p.Return("b")
	p.Return("b")
	p.Return("zzz")
	p.Return("")
	if got := p.Words(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Words() = %v, want [b]", got)
	}
}

func TestPoolTakeIsUniform(t *testing.T) {
	p := NewPool([]string{"a", "b", "c", "d"})
	rng := rand.New(rand.NewSource(42))
	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		w, _ := p.Take(rng)
		counts[w]++
		p.Return(w)
	}
	for _, w := range []string{"a", "b", "c", "d"} {
		if counts[w] < 800 || counts[w] > 1200 {
			t.Errorf("word %q drawn %d times out of 4000", w, counts[w])
		}
	}
}

func TestPoolReset(t *testing.T) {
	p := NewPool([]string{"a", "b"})
	rng := rand.New(rand.NewSource(1))
	p.Take(rng)
	p.Take(rng)
	p.Reset()
	if p.Len() != 2 {
		t.Errorf("Len() after Reset = %d, want 2", p.Len())
	}
}

func TestPoolsAreIndependent(t *testing.T) {
	a := NewPool(DefaultVocabulary())
	b := NewPool(DefaultVocabulary())
	rng := rand.New(rand.NewSource(7))
	w, _ := a.Take(rng)
	if !b.Contains(w) {
		t.Errorf("taking %q from one pool removed it from another", w)
	}
}
