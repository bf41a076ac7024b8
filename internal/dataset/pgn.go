package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/notnil/chess"
)

// SplitConfig controls how games become labeled corpora.
type SplitConfig struct {
	MinPly   int // skip this many opening plies of each game
	MaxGames int // stop after this many games (0 = all)
}

// ResultSplit holds position FENs bucketed by game outcome, plus counters
// for reporting. Draws and unfinished games contribute nothing.
type ResultSplit struct {
	WhiteWins     []string
	WhiteLosses   []string
	GamesRead     int
	GamesDecisive int
}

// SplitPGNFile parses a PGN file and buckets every position of each
// decisive game by its result.
func SplitPGNFile(path string, cfg SplitConfig) (*ResultSplit, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PGN file: %w", err)
	}
	defer file.Close()

	return SplitPGN(file, cfg)
}

// SplitPGN parses PGN from a reader and buckets positions by result.
func SplitPGN(r io.Reader, cfg SplitConfig) (*ResultSplit, error) {
	split := &ResultSplit{}

	scanner := chess.NewScanner(r)
	for scanner.Scan() {
		if cfg.MaxGames > 0 && split.GamesRead >= cfg.MaxGames {
			break
		}

		game := scanner.Next()
		if game == nil {
			continue
		}
		split.GamesRead++

		var bucket *[]string
		switch game.Outcome() {
		case chess.WhiteWon:
			bucket = &split.WhiteWins
		case chess.BlackWon:
			bucket = &split.WhiteLosses
		default:
			continue
		}
		split.GamesDecisive++

		for ply, pos := range game.Positions() {
			if ply < cfg.MinPly {
				continue
			}
			*bucket = append(*bucket, pos.String())
		}
	}

	// EOF is expected at end of file, not an error
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("error parsing PGN: %w", err)
	}

	return split, nil
}
