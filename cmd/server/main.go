package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/light-bringer/storefront-service/internal/pkg/config"
	"github.com/light-bringer/storefront-service/internal/pkg/logger"
	"github.com/light-bringer/storefront-service/internal/services"
	grpcstorefront "github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
	httphandler "github.com/light-bringer/storefront-service/internal/transport/http"
)

const (
	shutdownTimeout    = 10 * time.Second
	evictSweepInterval = time.Minute
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration from environment variables
	cfg := config.Load()
	lg := logger.New(logger.Options{
		Service: "storefront-service",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	lg.Info("starting storefront service",
		slog.String("storage_backend", cfg.StorageBackend),
		slog.Bool("spanner", cfg.SpannerDB != ""),
		slog.Bool("postgres_tracking", cfg.TrackingDSN != ""),
		slog.Int("http_port", cfg.HTTPPort),
		slog.Int("grpc_port", cfg.GRPCPort))

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create servers
	grpcServer, healthSrv := grpcstorefront.NewServer(serviceOpts.GRPCHandler, lg)
	lis, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           httphandler.NewRouter(serviceOpts.HTTPHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 4. Serve until a signal arrives or a server fails
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg.Info("gRPC server listening", slog.String("addr", lis.Addr().String()))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		lg.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.SessionIdleTimeout > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(evictSweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					n, err := serviceOpts.Sessions.EvictIdle(gctx, cfg.SessionIdleTimeout)
					if err != nil {
						lg.Warn("failed to flush evicted sessions", slog.Any("error", err))
					}
					if n > 0 {
						lg.Debug("evicted idle sessions", slog.Int("count", n))
					}
				}
			}
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		lg.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		healthSrv.SetServingStatus(grpcstorefront.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lg.Error("HTTP server shutdown error", slog.Any("error", err))
		}
		grpcServer.GracefulStop()

		if err := serviceOpts.Sessions.Flush(shutdownCtx); err != nil {
			lg.Error("failed to flush sessions", slog.Any("error", err))
		}
		return nil
	})

	return g.Wait()
}
