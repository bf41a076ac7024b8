package dataset

import (
	"errors"
	"testing"

	"github.com/thyrook/deepchess/internal/codec"
)

func TestItemSampler(t *testing.T) {
	corpus := NewCorpus([]string{startFEN, e4FEN, endingFEN})
	s := NewItemSampler(corpus)

	if s.Len() != 3 {
		t.Fatalf("Expected length 3, got %d", s.Len())
	}

	for i := 0; i < s.Len(); i++ {
		vec, err := s.Sample(i)
		if err != nil {
			t.Fatalf("Failed to sample index %d: %v", i, err)
		}

		fen, _ := corpus.FEN(i)
		want, err := codec.EncodeFEN(fen)
		if err != nil {
			t.Fatalf("Failed to encode: %v", err)
		}
		assertVectorEqual(t, vec, want)
	}
}

func TestItemSamplerDeterministic(t *testing.T) {
	s := NewItemSampler(NewCorpus([]string{startFEN, e4FEN}))

	first, err := s.Sample(1)
	if err != nil {
		t.Fatalf("Failed to sample: %v", err)
	}
	second, err := s.Sample(1)
	if err != nil {
		t.Fatalf("Failed to sample: %v", err)
	}

	assertVectorEqual(t, first, second)
}

func TestItemSamplerIndexOutOfRange(t *testing.T) {
	s := NewItemSampler(NewCorpus([]string{startFEN}))

	for _, i := range []int{-1, 1, 99} {
		if _, err := s.Sample(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Sample(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestItemSamplerEmptyCorpus(t *testing.T) {
	s := NewItemSampler(NewCorpus(nil))

	if s.Len() != 0 {
		t.Errorf("Expected length 0, got %d", s.Len())
	}
	if _, err := s.Sample(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}
