package dataset

import (
	"fmt"

	"github.com/thyrook/deepchess/internal/codec"
)

// ItemSampler exposes one encoded position per corpus index, for
// autoencoder-style representation training. Unlike PairSampler it holds
// no randomness: the same index always yields the same vector.
type ItemSampler struct {
	corpus *Corpus
}

// NewItemSampler creates a sampler over a single corpus.
func NewItemSampler(corpus *Corpus) *ItemSampler {
	return &ItemSampler{corpus: corpus}
}

// Len returns the corpus size.
func (s *ItemSampler) Len() int {
	return s.corpus.Len()
}

// Sample encodes the position at the given index.
func (s *ItemSampler) Sample(index int) ([]float32, error) {
	fen, err := s.corpus.FEN(index)
	if err != nil {
		return nil, err
	}

	vec, err := codec.EncodeFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("corpus entry %d: %w", index, err)
	}
	return vec, nil
}
