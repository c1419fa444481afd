package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/algowatch-backend/internal/archive"
	"github.com/goodnatureofminers/algowatch-backend/internal/engine"
	"github.com/goodnatureofminers/algowatch-backend/internal/metrics"
	"github.com/goodnatureofminers/algowatch-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/algowatch-backend/internal/stats"
	"github.com/goodnatureofminers/algowatch-backend/internal/stream"
	"github.com/goodnatureofminers/algowatch-backend/internal/transport"
)

type config struct {
	StreamEndpoint       string        `long:"stream-endpoint" env:"ALGOWATCH_STREAM_ENDPOINT" description:"websocket block stream endpoint" required:"true"`
	WindowCapacity       int           `long:"window-capacity" env:"ALGOWATCH_WINDOW_CAPACITY" description:"max blocks retained in the window" default:"240"`
	HeightTolerance      uint64        `long:"height-tolerance" env:"ALGOWATCH_HEIGHT_TOLERANCE" description:"max height gap below the tip before an increment is stale" default:"120"`
	Horizon              time.Duration `long:"horizon" env:"ALGOWATCH_HORIZON" description:"time horizon for per-algorithm statistics" default:"1h"`
	SingleMinerCap       int           `long:"single-miner-cap" env:"ALGOWATCH_SINGLE_MINER_CAP" description:"max single-block miners listed in the distribution" default:"25"`
	HandshakeTimeout     time.Duration `long:"handshake-timeout" env:"ALGOWATCH_HANDSHAKE_TIMEOUT" description:"websocket handshake timeout" default:"10s"`
	ReconnectDelay       time.Duration `long:"reconnect-delay" env:"ALGOWATCH_RECONNECT_DELAY" description:"initial reconnect backoff delay" default:"2s"`
	MaxReconnectDelay    time.Duration `long:"max-reconnect-delay" env:"ALGOWATCH_MAX_RECONNECT_DELAY" description:"reconnect backoff cap" default:"30s"`
	MaxReconnectAttempts int           `long:"max-reconnect-attempts" env:"ALGOWATCH_MAX_RECONNECT_ATTEMPTS" description:"reconnect attempts before giving up" default:"10"`
	FallbackTimeout      time.Duration `long:"fallback-timeout" env:"ALGOWATCH_FALLBACK_TIMEOUT" description:"wait for a genuine snapshot before synthesizing one" default:"2s"`
	FallbackWindowSize   int           `long:"fallback-window-size" env:"ALGOWATCH_FALLBACK_WINDOW_SIZE" description:"synthetic snapshot size" default:"60"`
	ClickhouseDSN        string        `long:"clickhouse-dsn" env:"ALGOWATCH_CLICKHOUSE_DSN" description:"ClickHouse DSN for the block archive; empty disables archiving"`
	ArchiveFlushSize     int           `long:"archive-flush-size" env:"ALGOWATCH_ARCHIVE_FLUSH_SIZE" description:"archive batch size" default:"100"`
	ArchiveFlushInterval time.Duration `long:"archive-flush-interval" env:"ALGOWATCH_ARCHIVE_FLUSH_INTERVAL" description:"archive flush interval" default:"5s"`
	ArchiveRPS           int           `long:"archive-rps" env:"ALGOWATCH_ARCHIVE_RPS" description:"archive insert rate limit per second" default:"10"`
	HTTPAddr             string        `long:"http-addr" env:"ALGOWATCH_HTTP_ADDR" description:"address of the read API and /metrics" default:":8080"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("engine failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	calculator, err := stats.NewCalculator(stats.DefaultConstants())
	if err != nil {
		return fmt.Errorf("init stats calculator: %w", err)
	}
	aggregator, err := stats.NewAggregator(cfg.SingleMinerCap)
	if err != nil {
		return fmt.Errorf("init distribution aggregator: %w", err)
	}

	engineCfg := engine.Config{
		WindowCapacity:  cfg.WindowCapacity,
		HeightTolerance: cfg.HeightTolerance,
		Horizon:         cfg.Horizon,
		Calculator:      calculator,
		Aggregator:      aggregator,
		Metrics:         metrics.NewEngine(),
		Logger:          logger,
	}

	var archiver *archive.Archiver
	if cfg.ClickhouseDSN != "" {
		repo, repoErr := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewArchive())
		if repoErr != nil {
			return fmt.Errorf("init clickhouse repository: %w", repoErr)
		}
		height, heightErr := repo.MaxBlockHeight(ctx)
		if heightErr != nil {
			return fmt.Errorf("probe block archive: %w", heightErr)
		}
		logger.Info("Block archive enabled", zap.Uint64("maxArchivedHeight", height))

		archiver, err = archive.New(logger, repo, cfg.ArchiveFlushSize, cfg.ArchiveFlushInterval, cfg.ArchiveRPS)
		if err != nil {
			return fmt.Errorf("init archiver: %w", err)
		}
		archiver.Start(ctx)
		engineCfg.Archive = archiver
	}

	eng, err := engine.New(engineCfg)
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}

	client, err := stream.NewClient(stream.Config{
		Endpoint:             cfg.StreamEndpoint,
		HandshakeTimeout:     cfg.HandshakeTimeout,
		ReconnectDelay:       cfg.ReconnectDelay,
		MaxReconnectDelay:    cfg.MaxReconnectDelay,
		MaxReconnectAttempts: cfg.MaxReconnectAttempts,
		FallbackTimeout:      cfg.FallbackTimeout,
		FallbackWindowSize:   cfg.FallbackWindowSize,
		Logger:               logger,
		Metrics:              metrics.NewStream(cfg.StreamEndpoint),
	}, eng)
	if err != nil {
		return fmt.Errorf("init stream client: %w", err)
	}

	handler, err := transport.NewHandler(logger, eng)
	if err != nil {
		return fmt.Errorf("init api handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", handler.Router())
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if serveErr := server.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			serveErrCh <- serveErr
		}
	}()

	if err := client.Start(ctx); err != nil {
		return fmt.Errorf("start stream client: %w", err)
	}

	select {
	case <-ctx.Done():
	case err = <-serveErrCh:
		err = fmt.Errorf("http server: %w", err)
	}

	logger.Info("Shutting down")
	client.Stop()
	eng.Close()
	if archiver != nil {
		archiver.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Failed to shutdown http server", zap.Error(shutdownErr))
	}

	return err
}
