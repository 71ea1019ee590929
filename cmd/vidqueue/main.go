package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bnema/vidqueue/config"
	"github.com/bnema/vidqueue/internal/adapter/converter/ffmpeg"
	HTTPAdapter "github.com/bnema/vidqueue/internal/adapter/http"
	"github.com/bnema/vidqueue/internal/adapter/http/ratelimit"
	amqpnotify "github.com/bnema/vidqueue/internal/adapter/notify/amqp"
	"github.com/bnema/vidqueue/internal/adapter/storage/jsonfile"
	"github.com/bnema/vidqueue/internal/adapter/storage/localfs"
	redisqueue "github.com/bnema/vidqueue/internal/adapter/storage/redis"
	"github.com/bnema/vidqueue/internal/adapter/storage/s3"
	sqlitestore "github.com/bnema/vidqueue/internal/adapter/storage/sqlite"
	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/backoff"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
	"github.com/bnema/vidqueue/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Printf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)

	logger.Info.Printf("starting vidqueue role=%s store=%s queue=%s", cfg.Role, cfg.StoreBackend, cfg.QueueBackend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error.Printf("%v", err)
		os.Exit(1)
	}
	logger.Info.Printf("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config) error {
	uploadDir := filepath.Join(cfg.DataDir, "uploads")
	thumbDir := filepath.Join(cfg.DataDir, "thumbnails")
	for _, dir := range []string{cfg.DataDir, uploadDir, thumbDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	var checks []HTTPAdapter.HealthCheck
	idle := backoff.New(100*time.Millisecond, 2*time.Second, 2)

	var (
		store  port.JobStore
		sqlite *sqlitestore.Store
	)
	switch cfg.StoreBackend {
	case config.BackendJSONFile:
		js, err := jsonfile.NewStore(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		store = js
	default:
		s, err := sqlitestore.NewStore(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		defer func() { _ = s.Close() }()
		sqlite = s
		store = s
		checks = append(checks, HTTPAdapter.HealthCheck{Name: "sqlite", Check: s.Ping})
	}

	var queue port.TaskQueue
	switch cfg.QueueBackend {
	case config.BackendRedis:
		client, err := redisqueue.NewClient(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		queue = redisqueue.NewTaskQueue(client, idle)
		checks = append(checks, HTTPAdapter.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	default:
		queue = sqlitestore.NewTaskQueue(sqlite, idle)
	}

	var thumbnails port.ThumbnailStore = localfs.NewThumbnailStore(thumbDir, cfg.PublicBaseURL)
	if cfg.S3Endpoint != "" {
		mirror, err := s3.NewMirror(s3.Config{
			Endpoint:  cfg.S3Endpoint,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
		}, thumbnails)
		if err != nil {
			return err
		}
		if err := mirror.EnsureBucket(ctx); err != nil {
			return err
		}
		thumbnails = mirror
		logger.Info.Printf("mirroring thumbnails to bucket %s at %s", cfg.S3Bucket, cfg.S3Endpoint)
	}

	eventBus := service.NewEventBus()
	publishers := []port.EventPublisher{eventBus}
	if cfg.AMQPURL != "" {
		publisher, err := amqpnotify.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return err
		}
		defer func() { _ = publisher.Close() }()
		publishers = append(publishers, publisher)
		logger.Info.Printf("publishing job events to exchange %s", cfg.AMQPExchange)
	}
	events := service.NewFanOut(publishers...)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.RunsWorkers() {
		policy := domain.RetryPolicy{MaxRetries: cfg.MaxRetries, Delay: cfg.RetryDelay}
		processor := service.NewProcessor(
			store,
			ffmpeg.NewInspector(cfg.FFprobePath, cfg.ToolTimeout),
			ffmpeg.NewExtractor(cfg.FFmpegPath, cfg.ToolTimeout, cfg.ThumbnailWidth),
			thumbnails,
			events,
			thumbDir,
			policy,
		)
		pool := service.NewWorkerPool(queue, processor, cfg.Workers, cfg.LeaseDuration)
		retention := service.NewRetentionService(store, queue, thumbnails, cfg.RetentionDays)

		g.Go(func() error { return pool.Run(gctx) })
		g.Go(func() error {
			retention.Run(gctx, cfg.CleanupInterval)
			return nil
		})
	}

	if cfg.ServesHTTP() {
		submissions := service.NewSubmissionService(store, queue, events, uploadDir, cfg.MaxRetries)
		status := service.NewStatusService(store, queue)
		var uploads *ratelimit.Limiter
		if cfg.UploadRateLimit > 0 {
			uploads = ratelimit.NewLimiter(cfg.UploadRateLimit, time.Minute, 5*time.Minute)
		}
		server := HTTPAdapter.NewServer(submissions, status, eventBus, thumbDir, cfg.MaxUploadSizeMB, checks, uploads)

		addr := fmt.Sprintf(":%d", cfg.Port)
		httpServer := &http.Server{
			Addr:         addr,
			Handler:      server,
			ReadTimeout:  5 * time.Minute,
			WriteTimeout: 10 * time.Minute,
			IdleTimeout:  120 * time.Second,
		}

		g.Go(func() error {
			logger.Info.Printf("server listening on %s", addr)
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info.Printf("shutting down http server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error.Printf("http shutdown error: %v", err)
			}
			return nil
		})
	}

	return g.Wait()
}
