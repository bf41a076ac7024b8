package dataset

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/thyrook/deepchess/internal/codec"
)

// Pair is one training example for the comparison model: two encoded
// positions and a one-hot label. Label {1,0} means First came from a game
// white won; {0,1} means Second did.
type Pair struct {
	First  []float32
	Second []float32
	Label  [2]float32
}

// PairSampler draws randomized (white-won, white-lost) position pairs.
// Draws are i.i.d. with replacement: Len is a declared logical epoch
// length, not an exhaustion bound, and no draw depends on any index. The
// corpora are read-only for the sampler's lifetime, so concurrent Sample
// calls are safe; the RNG is the only guarded state.
type PairSampler struct {
	whiteWins     *Corpus
	whiteLosses   *Corpus
	pairsPerEpoch int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewPairSampler creates a sampler over the two labeled corpora. Both must
// be non-empty.
func NewPairSampler(whiteWins, whiteLosses *Corpus, pairsPerEpoch int, seed int64) (*PairSampler, error) {
	if whiteWins.Len() == 0 || whiteLosses.Len() == 0 {
		return nil, fmt.Errorf("%w: pair sampler needs both corpora non-empty (white wins: %d, white losses: %d)",
			ErrEmptyCorpus, whiteWins.Len(), whiteLosses.Len())
	}
	if pairsPerEpoch <= 0 {
		return nil, fmt.Errorf("pairs per epoch must be positive, got %d", pairsPerEpoch)
	}

	return &PairSampler{
		whiteWins:     whiteWins,
		whiteLosses:   whiteLosses,
		pairsPerEpoch: pairsPerEpoch,
		rng:           rand.New(rand.NewSource(seed)),
	}, nil
}

// Len returns the configured number of pairs per logical epoch.
func (s *PairSampler) Len() int {
	return s.pairsPerEpoch
}

// Sample draws one training pair: a uniform position from each corpus and
// a fair coin deciding which side of the pair holds the white-won position.
func (s *PairSampler) Sample() (Pair, error) {
	s.mu.Lock()
	i := s.rng.Intn(s.whiteWins.Len())
	j := s.rng.Intn(s.whiteLosses.Len())
	whiteFirst := s.rng.Intn(2) == 0
	s.mu.Unlock()

	win, err := codec.EncodeFEN(s.whiteWins.at(i))
	if err != nil {
		return Pair{}, fmt.Errorf("white-won corpus entry %d: %w", i, err)
	}
	loss, err := codec.EncodeFEN(s.whiteLosses.at(j))
	if err != nil {
		return Pair{}, fmt.Errorf("white-lost corpus entry %d: %w", j, err)
	}

	if whiteFirst {
		return Pair{First: win, Second: loss, Label: [2]float32{1, 0}}, nil
	}
	return Pair{First: loss, Second: win, Label: [2]float32{0, 1}}, nil
}
