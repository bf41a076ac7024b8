package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyCorpus reports a sampler constructed over a zero-length corpus.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrIndexOutOfRange reports a corpus index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Corpus is an immutable ordered sequence of FEN position records sharing
// one label, e.g. all positions from games white won. It references the
// slice it is given; callers must not mutate it for the corpus lifetime.
type Corpus struct {
	fens []string
}

// NewCorpus wraps a slice of FEN records.
func NewCorpus(fens []string) *Corpus {
	return &Corpus{fens: fens}
}

// LoadCorpus reads a newline-delimited FEN file. Blank lines are skipped.
func LoadCorpus(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	var fens []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			fens = append(fens, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	return NewCorpus(fens), nil
}

// WriteCorpus writes FEN records as a newline-delimited file, creating the
// parent directory if needed.
func WriteCorpus(path string, fens []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create corpus file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, fen := range fens {
		if _, err := w.WriteString(fen + "\n"); err != nil {
			return fmt.Errorf("failed to write corpus file: %w", err)
		}
	}
	return w.Flush()
}

// Len returns the number of records in the corpus.
func (c *Corpus) Len() int {
	return len(c.fens)
}

// FEN returns the record at index i.
func (c *Corpus) FEN(i int) (string, error) {
	if i < 0 || i >= len(c.fens) {
		return "", fmt.Errorf("%w: index %d with corpus length %d", ErrIndexOutOfRange, i, len(c.fens))
	}
	return c.fens[i], nil
}

// at is FEN without the bounds check, for callers that draw indices from
// the corpus length themselves.
func (c *Corpus) at(i int) string {
	return c.fens[i]
}
