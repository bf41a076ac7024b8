package storage

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/thyrook/deepchess/internal/codec"
	"github.com/thyrook/deepchess/internal/dataset"
)

// IngestConfig holds configuration for corpus ingestion.
type IngestConfig struct {
	BatchSize int // entries per write transaction
	Workers   int // parallel encoders (<=1 = sequential)
}

// DefaultIngestConfig returns a config with sensible defaults.
func DefaultIngestConfig() IngestConfig {
	return IngestConfig{
		BatchSize: 256,
		Workers:   4,
	}
}

// Ingestor encodes a corpus of FEN records into the store. Any encoding
// failure halts the run: a corpus entry that does not encode means corrupt
// training data, which must never be skipped silently.
type Ingestor struct {
	store *Store
	cfg   IngestConfig
	log   *zap.Logger
}

// NewIngestor creates an ingestor writing to the given store.
func NewIngestor(store *Store, cfg IngestConfig, log *zap.Logger) *Ingestor {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultIngestConfig().BatchSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingestor{store: store, cfg: cfg, log: log}
}

// IngestStats contains statistics about one ingestion run.
type IngestStats struct {
	Encoded int32
}

// IngestCorpus encodes every record of the corpus into the named bucket.
func (ing *Ingestor) IngestCorpus(bucket string, corpus *dataset.Corpus) (*IngestStats, error) {
	stats := &IngestStats{}

	if corpus.Len() == 0 {
		return stats, fmt.Errorf("%w: nothing to ingest into %q", dataset.ErrEmptyCorpus, bucket)
	}

	ing.log.Info("ingestion started",
		zap.String("bucket", bucket),
		zap.Int("records", corpus.Len()),
		zap.Int("workers", ing.cfg.Workers))

	var batchMu sync.Mutex
	var currentBatch []*Entry

	flush := func(min int) error {
		batchMu.Lock()
		if len(currentBatch) < min {
			batchMu.Unlock()
			return nil
		}
		toWrite := currentBatch
		currentBatch = nil
		batchMu.Unlock()

		if err := ing.store.PutBatch(bucket, toWrite); err != nil {
			return fmt.Errorf("failed to write batch: %w", err)
		}
		return nil
	}

	encodeRecord := func(idx int) error {
		fen, err := corpus.FEN(idx)
		if err != nil {
			return err
		}

		vec, err := codec.EncodeFEN(fen)
		if err != nil {
			return fmt.Errorf("corpus entry %d: %w", idx, err)
		}

		batchMu.Lock()
		currentBatch = append(currentBatch, &Entry{FEN: fen, Vector: vec})
		batchMu.Unlock()

		if n := atomic.AddInt32(&stats.Encoded, 1); n%10000 == 0 {
			ing.log.Info("ingestion progress",
				zap.String("bucket", bucket),
				zap.Int32("encoded", n))
		}

		return flush(ing.cfg.BatchSize)
	}

	if ing.cfg.Workers <= 1 {
		for i := 0; i < corpus.Len(); i++ {
			if err := encodeRecord(i); err != nil {
				return stats, err
			}
		}
	} else {
		var wg sync.WaitGroup
		semaphore := make(chan struct{}, ing.cfg.Workers)
		errChan := make(chan error, 1)

		for i := 0; i < corpus.Len(); i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()

				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				if err := encodeRecord(idx); err != nil {
					select {
					case errChan <- err:
					default:
					}
				}
			}(i)
		}

		wg.Wait()
		close(errChan)

		if err := <-errChan; err != nil {
			return stats, err
		}
	}

	// Write whatever is left in the batch.
	if err := flush(1); err != nil {
		return stats, err
	}

	ing.log.Info("ingestion complete",
		zap.String("bucket", bucket),
		zap.Int32("encoded", atomic.LoadInt32(&stats.Encoded)))

	return stats, nil
}
