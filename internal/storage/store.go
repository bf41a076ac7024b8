package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"

	"github.com/thyrook/deepchess/internal/codec"
)

// Bucket names, one per corpus label.
const (
	BucketWhiteWins   = "white_wins"
	BucketWhiteLosses = "white_losses"
)

// Entry is one encoded position as stored on disk. The FEN is kept
// alongside the vector so corrupted encodings can be traced back to their
// source record.
type Entry struct {
	FEN    string    `json:"fen"`
	Vector []float32 `json:"vector"`
}

// Store persists encoded positions in a BoltDB file, one bucket per corpus
// label.
type Store struct {
	db   *bolt.DB
	path string
	mu   sync.RWMutex
}

// Open creates a new store or opens an existing one.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{BucketWhiteWins, BucketWhiteLosses} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put adds a single entry to the named bucket.
func (s *Store) Put(bucket string, entry *Entry) error {
	return s.PutBatch(bucket, []*Entry{entry})
}

// PutBatch adds multiple entries to the named bucket in one transaction.
func (s *Store) PutBatch(bucket string, entries []*Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucket)
		}

		for _, entry := range entries {
			id, _ := b.NextSequence()
			key := []byte(fmt.Sprintf("%020d", id))

			value, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("failed to marshal entry: %w", err)
			}

			if err := b.Put(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Count returns the number of entries in the named bucket.
func (s *Store) Count(bucket string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucket)
		}
		count = b.Stats().KeyN
		return nil
	})
	return count, err
}

// LoadBatch loads up to n entries from the named bucket starting at the
// given offset, allowing streaming access without loading everything.
func (s *Store) LoadBatch(bucket string, offset, n int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []*Entry

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return fmt.Errorf("bucket %q not found", bucket)
		}

		cursor := b.Cursor()

		currentIdx := 0
		k, v := cursor.First()
		for k != nil && currentIdx < offset {
			k, v = cursor.Next()
			currentIdx++
		}

		loaded := 0
		for k != nil && loaded < n {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal entry: %w", err)
			}

			entries = append(entries, &entry)
			loaded++

			k, v = cursor.Next()
		}
		return nil
	})

	return entries, err
}

// Clear removes all entries from both buckets.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{BucketWhiteWins, BucketWhiteLosses} {
			if err := tx.DeleteBucket([]byte(name)); err != nil {
				return err
			}
			if _, err := tx.CreateBucket([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// VerifyIntegrity scans both buckets and re-validates every stored vector
// against the codec layout contract.
func (s *Store) VerifyIntegrity() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	badEntries := 0
	totalEntries := 0

	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range []string{BucketWhiteWins, BucketWhiteLosses} {
			b := tx.Bucket([]byte(name))
			if b == nil {
				return fmt.Errorf("bucket %q not found", name)
			}

			err := b.ForEach(func(k, v []byte) error {
				totalEntries++

				var entry Entry
				if err := json.Unmarshal(v, &entry); err != nil {
					badEntries++
					return nil // Continue checking other entries
				}

				if err := codec.Validate(entry.Vector); err != nil {
					badEntries++
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if badEntries > 0 {
		return fmt.Errorf("integrity check failed: %d/%d entries have errors", badEntries, totalEntries)
	}
	return nil
}

// Stats contains statistics about the store.
type Stats struct {
	WhiteWins   int
	WhiteLosses int
	FilePath    string
	FileSize    int64
}

// GetStats returns entry counts and file information.
func (s *Store) GetStats() (*Stats, error) {
	wins, err := s.Count(BucketWhiteWins)
	if err != nil {
		return nil, err
	}
	losses, err := s.Count(BucketWhiteLosses)
	if err != nil {
		return nil, err
	}

	fileInfo, err := os.Stat(s.path)
	if err != nil {
		return nil, err
	}

	return &Stats{
		WhiteWins:   wins,
		WhiteLosses: losses,
		FilePath:    s.path,
		FileSize:    fileInfo.Size(),
	}, nil
}
