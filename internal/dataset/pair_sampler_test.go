package dataset

import (
	"errors"
	"testing"

	"github.com/thyrook/deepchess/internal/codec"
)

func TestNewPairSamplerEmptyCorpus(t *testing.T) {
	empty := NewCorpus(nil)
	full := NewCorpus([]string{startFEN})

	tests := []struct {
		name        string
		wins, losses *Corpus
	}{
		{"Empty wins", empty, full},
		{"Empty losses", full, empty},
		{"Both empty", empty, empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPairSampler(tt.wins, tt.losses, 100, 1); !errors.Is(err, ErrEmptyCorpus) {
				t.Errorf("Expected ErrEmptyCorpus, got %v", err)
			}
		})
	}
}

func TestPairSamplerLen(t *testing.T) {
	corpus := NewCorpus([]string{startFEN})
	s, err := NewPairSampler(corpus, corpus, 5000, 1)
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	if s.Len() != 5000 {
		t.Errorf("Expected logical length 5000, got %d", s.Len())
	}
}

func TestPairSamplerShape(t *testing.T) {
	wins := NewCorpus([]string{startFEN, endingFEN})
	losses := NewCorpus([]string{e4FEN})

	s, err := NewPairSampler(wins, losses, 100, 42)
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	for i := 0; i < 50; i++ {
		pair, err := s.Sample()
		if err != nil {
			t.Fatalf("Failed to sample: %v", err)
		}

		if len(pair.First) != codec.VectorSize || len(pair.Second) != codec.VectorSize {
			t.Fatalf("Expected vectors of length %d, got %d and %d",
				codec.VectorSize, len(pair.First), len(pair.Second))
		}

		onehot := pair.Label == [2]float32{1, 0} || pair.Label == [2]float32{0, 1}
		if !onehot {
			t.Fatalf("Expected one-hot label, got %v", pair.Label)
		}
	}
}

func TestPairSamplerLabelSymmetry(t *testing.T) {
	corpus := NewCorpus([]string{startFEN})

	s, err := NewPairSampler(corpus, corpus, 10000, 7)
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	const draws = 10000
	whiteFirst := 0
	for i := 0; i < draws; i++ {
		pair, err := s.Sample()
		if err != nil {
			t.Fatalf("Failed to sample: %v", err)
		}
		if pair.Label == [2]float32{1, 0} {
			whiteFirst++
		}
	}

	freq := float64(whiteFirst) / float64(draws)
	if freq < 0.48 || freq > 0.52 {
		t.Errorf("Label (1,0) frequency %.4f outside 0.5±0.02", freq)
	}
}

func TestPairSamplerSingletonCorpora(t *testing.T) {
	wins := NewCorpus([]string{startFEN})
	losses := NewCorpus([]string{e4FEN})

	s, err := NewPairSampler(wins, losses, 100, 3)
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	winVec, err := codec.EncodeFEN(startFEN)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	lossVec, err := codec.EncodeFEN(e4FEN)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	// With size-1 corpora every draw must return the same two positions,
	// only the side assignment may differ.
	for i := 0; i < 100; i++ {
		pair, err := s.Sample()
		if err != nil {
			t.Fatalf("Failed to sample: %v", err)
		}

		switch pair.Label {
		case [2]float32{1, 0}:
			assertVectorEqual(t, pair.First, winVec)
			assertVectorEqual(t, pair.Second, lossVec)
		case [2]float32{0, 1}:
			assertVectorEqual(t, pair.First, lossVec)
			assertVectorEqual(t, pair.Second, winVec)
		default:
			t.Fatalf("Unexpected label %v", pair.Label)
		}
	}
}

func TestPairSamplerBadFEN(t *testing.T) {
	wins := NewCorpus([]string{"not a fen"})
	losses := NewCorpus([]string{e4FEN})

	s, err := NewPairSampler(wins, losses, 100, 1)
	if err != nil {
		t.Fatalf("Failed to create sampler: %v", err)
	}

	if _, err := s.Sample(); !errors.Is(err, codec.ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
}

func assertVectorEqual(t *testing.T, got, want []float32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Vector length %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("Vectors diverge at index %d: %v != %v", i, got[i], want[i])
		}
	}
}
