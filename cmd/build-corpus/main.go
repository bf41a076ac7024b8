package main

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thyrook/deepchess/internal/config"
	"github.com/thyrook/deepchess/internal/dataset"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	pgnPath := flag.String("pgn", "", "Path to PGN file of labeled games")
	minPly := flag.Int("min-ply", -1, "Skip this many opening plies per game (-1 = use config)")
	maxGames := flag.Int("max-games", 0, "Maximum number of games to process (0 = all)")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	if *pgnPath == "" {
		logger.Fatal("Missing required -pgn flag")
	}

	cfg := config.LoadOrDefault(*configPath)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	if err := cfg.EnsureDirectories(); err != nil {
		logger.Fatal("Failed to create directories", zap.Error(err))
	}
	if *minPly >= 0 {
		cfg.Data.MinPly = *minPly
	}

	logger.Info("Building labeled corpora",
		zap.String("pgn", *pgnPath),
		zap.Int("min_ply", cfg.Data.MinPly),
		zap.Int("max_games", *maxGames))

	split, err := dataset.SplitPGNFile(*pgnPath, dataset.SplitConfig{
		MinPly:   cfg.Data.MinPly,
		MaxGames: *maxGames,
	})
	if err != nil {
		logger.Fatal("Failed to split PGN", zap.Error(err))
	}

	logger.Info("PGN parsed",
		zap.Int("games_read", split.GamesRead),
		zap.Int("games_decisive", split.GamesDecisive),
		zap.Int("white_won_positions", len(split.WhiteWins)),
		zap.Int("white_lost_positions", len(split.WhiteLosses)))

	if len(split.WhiteWins) == 0 || len(split.WhiteLosses) == 0 {
		logger.Error("One of the corpora is empty; both results are needed for pair sampling")
		os.Exit(1)
	}

	if err := dataset.WriteCorpus(cfg.Data.WhiteWinsPath, split.WhiteWins); err != nil {
		logger.Fatal("Failed to write white-won corpus", zap.Error(err))
	}
	if err := dataset.WriteCorpus(cfg.Data.WhiteLossesPath, split.WhiteLosses); err != nil {
		logger.Fatal("Failed to write white-lost corpus", zap.Error(err))
	}

	logger.Info("Corpora written",
		zap.String("white_wins", cfg.Data.WhiteWinsPath),
		zap.String("white_losses", cfg.Data.WhiteLossesPath))
}

func newLogger(verbose bool) *zap.Logger {
	var logger *zap.Logger
	if verbose {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, _ = config.Build()
	} else {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		logger, _ = config.Build()
	}
	return logger
}
