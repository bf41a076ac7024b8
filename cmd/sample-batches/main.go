package main

import (
	"flag"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thyrook/deepchess/internal/config"
	"github.com/thyrook/deepchess/internal/dataset"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	numBatches := flag.Int("batches", 10, "Number of pair batches to draw")
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

	sampler, err := dataset.NewPairSampler(whiteWins, whiteLosses, cfg.Sampler.PairsPerEpoch, cfg.Sampler.Seed)
	if err != nil {
		logger.Fatal("Failed to create pair sampler", zap.Error(err))
	}

	logger.Info("Sampling pair batches",
		zap.Int("batches", *numBatches),
		zap.Int("batch_size", cfg.Sampler.BatchSize),
		zap.Int("epoch_length", sampler.Len()),
		zap.Int64("seed", cfg.Sampler.Seed))

	whiteFirst := 0
	total := 0
	start := time.Now()

	for b := 0; b < *numBatches; b++ {
		first, _, labels, err := dataset.PairBatch(sampler, cfg.Sampler.BatchSize)
		if err != nil {
			logger.Fatal("Failed to draw batch", zap.Error(err))
		}

		labelData := labels.Data().([]float32)
		for i := 0; i < cfg.Sampler.BatchSize; i++ {
			if labelData[i*2] == 1 {
				whiteFirst++
			}
			total++
		}

		logger.Debug("Batch drawn",
			zap.Int("batch", b),
			zap.Any("input_shape", first.Shape()),
			zap.Any("label_shape", labels.Shape()))
	}

	elapsed := time.Since(start)
	logger.Info("Sampling complete",
		zap.Int("pairs", total),
		zap.Float64("white_first_frequency", float64(whiteFirst)/float64(total)),
		zap.Duration("elapsed", elapsed),
		zap.Float64("pairs_per_second", float64(total)/elapsed.Seconds()))
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
