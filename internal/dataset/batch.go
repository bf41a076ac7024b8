package dataset

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/thyrook/deepchess/internal/codec"
)

// PairBatch draws n pairs and packs them into dense matrices shaped for a
// siamese comparison network: two (n, 773) input tensors and an (n, 2)
// one-hot label tensor.
func PairBatch(s *PairSampler, n int) (first, second, labels *tensor.Dense, err error) {
	if n <= 0 {
		return nil, nil, nil, fmt.Errorf("batch size must be positive, got %d", n)
	}

	firstData := make([]float32, n*codec.VectorSize)
	secondData := make([]float32, n*codec.VectorSize)
	labelData := make([]float32, n*2)

	for b := 0; b < n; b++ {
		pair, err := s.Sample()
		if err != nil {
			return nil, nil, nil, err
		}
		copy(firstData[b*codec.VectorSize:], pair.First)
		copy(secondData[b*codec.VectorSize:], pair.Second)
		labelData[b*2] = pair.Label[0]
		labelData[b*2+1] = pair.Label[1]
	}

	first = tensor.New(tensor.WithShape(n, codec.VectorSize), tensor.WithBacking(firstData))
	second = tensor.New(tensor.WithShape(n, codec.VectorSize), tensor.WithBacking(secondData))
	labels = tensor.New(tensor.WithShape(n, 2), tensor.WithBacking(labelData))
	return first, second, labels, nil
}

// ItemBatch encodes corpus entries [offset, offset+n) into an (m, 773)
// tensor, where m may be smaller than n at the end of the corpus.
func ItemBatch(s *ItemSampler, offset, n int) (*tensor.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", n)
	}
	if offset < 0 || offset >= s.Len() {
		return nil, fmt.Errorf("%w: offset %d with corpus length %d", ErrIndexOutOfRange, offset, s.Len())
	}

	end := offset + n
	if end > s.Len() {
		end = s.Len()
	}

	data := make([]float32, 0, (end-offset)*codec.VectorSize)
	for i := offset; i < end; i++ {
		vec, err := s.Sample(i)
		if err != nil {
			return nil, err
		}
		data = append(data, vec...)
	}

	return tensor.New(tensor.WithShape(end-offset, codec.VectorSize), tensor.WithBacking(data)), nil
}
