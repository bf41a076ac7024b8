package main

import (
	"flag"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thyrook/deepchess/internal/config"
	"github.com/thyrook/deepchess/internal/dataset"
	"github.com/thyrook/deepchess/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	workers := flag.Int("workers", 4, "Number of parallel encoders")
	batchSize := flag.Int("batch", 256, "Entries per write transaction")
	clearData := flag.Bool("clear", false, "Clear existing store before encoding")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	cfg := config.LoadOrDefault(*configPath)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	whiteWins, err := dataset.LoadCorpus(cfg.Data.WhiteWinsPath)
	if err != nil {
		logger.Fatal("Failed to load white-won corpus", zap.Error(err))
	}
	whiteLosses, err := dataset.LoadCorpus(cfg.Data.WhiteLossesPath)
	if err != nil {
		logger.Fatal("Failed to load white-lost corpus", zap.Error(err))
	}

	logger.Info("Corpora loaded",
		zap.Int("white_wins", whiteWins.Len()),
		zap.Int("white_losses", whiteLosses.Len()))

	store, err := storage.Open(cfg.Data.StorePath)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

	if *clearData {
		logger.Warn("Clearing existing store")
		if err := store.Clear(); err != nil {
			logger.Fatal("Failed to clear store", zap.Error(err))
		}
	}

	ingestor := storage.NewIngestor(store, storage.IngestConfig{
		BatchSize: *batchSize,
		Workers:   *workers,
	}, logger)

	start := time.Now()
	for bucket, corpus := range map[string]*dataset.Corpus{
		storage.BucketWhiteWins:   whiteWins,
		storage.BucketWhiteLosses: whiteLosses,
	} {
		stats, err := ingestor.IngestCorpus(bucket, corpus)
		if err != nil {
			logger.Fatal("Ingestion failed",
				zap.String("bucket", bucket),
				zap.Error(err))
		}
		logger.Info("Bucket ingested",
			zap.String("bucket", bucket),
			zap.Int32("encoded", stats.Encoded))
	}

	if err := store.VerifyIntegrity(); err != nil {
		logger.Fatal("Integrity check failed", zap.Error(err))
	}

	stats, err := store.GetStats()
	if err != nil {
		logger.Fatal("Failed to get store stats", zap.Error(err))
	}

	logger.Info("Encoding complete",
		zap.Int("white_wins", stats.WhiteWins),
		zap.Int("white_losses", stats.WhiteLosses),
		zap.Int64("file_size", stats.FileSize),
		zap.Duration("elapsed", time.Since(start)))
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
