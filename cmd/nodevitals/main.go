package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nodevitals/internal/config"
	"nodevitals/internal/errors"
	"nodevitals/internal/hoststats"
	"nodevitals/internal/logger"
	"nodevitals/internal/pid"
	"nodevitals/internal/server"
	"nodevitals/internal/vitals"
)

var (
	cfg *config.Config
	sys vitals.System
	srv server.Server
)

func init() {
	// .env is optional; production environments set variables directly.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil && !cfg.Debug && !cfg.Verbose {
		logger.SetLogLevel(level)
	}
	logger.Debug().Msg("Config loaded")

	sys, err = vitals.New(vitals.Config{BlockStoragePath: cfg.BlockStoragePath}, hoststats.New())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics system")
	}

	// An empty listen address disables the HTTP surface; the agent
	// then only runs the scheduled scrape loop.
	if cfg.ListenAddress != "" {
		srv, err = server.New(cfg.ListenAddress, sys)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize HTTP server")
		}
	}
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to acquire PID file")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	// Construction succeeded: initial setup is complete.
	if srv != nil {
		srv.Health().Set(vitals.HealthHealthy)
	}

	var serverDone chan struct{}
	if srv != nil {
		serverDone = make(chan struct{})
		go func() {
			defer close(serverDone)
			if err := srv.Start(ctx); err != nil {
				logger.Error().Err(err).Msg("HTTP server error")
				cancel()
			}
		}()
	}

	if err := loop(ctx); err != nil {
		logger.Error().Err(err).Msg("error in main loop")
	}
	cancel()

	if serverDone != nil {
		<-serverDone
	}

	cleanup()
}

func loop(ctx context.Context) error {
	interval := time.Duration(cfg.Interval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if cfg.Monitor {
		logger.Info().Msg("Monitor mode activated. Logging node vitals...")
	}

	ready := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snapshot, err := scrapeOnce(ctx, interval)
			if err != nil {
				logScrapeFailure(err)
				continue
			}

			// The first successful scrape marks bootstrapping done.
			if !ready {
				ready = true
				if srv != nil {
					srv.Health().Set(vitals.HealthReady)
				}
				logger.Debug().Msg("First scrape succeeded; node is ready")
			}

			logSnapshot(snapshot)
		}
	}
}

func scrapeOnce(ctx context.Context, timeout time.Duration) (vitals.MetricsSnapshot, error) {
	scrapeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return sys.ScrapeMetrics(scrapeCtx)
}

func logScrapeFailure(err error) {
	var coded errors.Error
	if errors.As(err, &coded) {
		logger.ErrorWithCode(coded).Msg("scrape failed")
		return
	}
	logger.Error().Err(err).Msg("scrape failed")
}

func logSnapshot(snapshot vitals.MetricsSnapshot) {
	if cfg.Debug {
		logger.Debug().
			Str("cpu_frequency", snapshot.CPU.Frequency).
			Str("cpu_load", snapshot.CPU.Load).
			Str("cpu_time", snapshot.CPU.Time).
			Str("memory", snapshot.Memory.Memory).
			Str("swap", snapshot.Memory.Swap).
			Uint64("block_storage_size", snapshot.Disk.BlockStorageSize).
			Str("block_storage_path", snapshot.Disk.BlockStoragePath).
			Bool("monitor", cfg.Monitor).
			Msg("")
	} else if cfg.Verbose || cfg.Monitor {
		logger.Info().
			Str("cpu_load", snapshot.CPU.Load).
			Str("memory", snapshot.Memory.Memory).
			Uint64("block_storage_size", snapshot.Disk.BlockStorageSize).
			Msg("")
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func cleanup() {
	if err := pid.Remove(); err != nil {
		logger.Error().Err(err).Msg("failed to remove PID file")
	}
	logger.Info().Msg("Exiting...")
}
