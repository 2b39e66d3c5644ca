package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"foliodash/internal/api"
	"foliodash/internal/config"
	"foliodash/internal/currency"
	"foliodash/internal/netutil"
	"foliodash/internal/portfolio"
	"foliodash/internal/pricefeed"
	"foliodash/internal/scheduler"
	"foliodash/internal/stream"
	"foliodash/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := setupLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		if _, writeErr := io.WriteString(os.Stderr, "logger setup failed: "+err.Error()+"\n"); writeErr != nil {
			slog.Debug("logger setup stderr write failed", "error", writeErr)
		}
		os.Exit(1)
	}

	slog.Info("dashboard config loaded",
		"bind_addr", cfg.BindAddr,
		"port_candidates", cfg.PortCandidates,
		"port_auto_fallback", cfg.PortAutoFallback,
		"currency", cfg.Currency,
		"feed_latency_ms", cfg.FeedLatencyMS,
		"auto_refresh_cron", cfg.AutoRefreshCron,
		"log_level", cfg.LogLevel,
		"log_file", cfg.LogFile,
	)

	bindAddr, err := netutil.SelectBindAddr(cfg.BindAddr, cfg.PortCandidates, cfg.PortAutoFallback)
	if err != nil {
		slog.Error("failed to select bind address", "preferred", cfg.BindAddr, "error", err)
		os.Exit(1)
	}

	store := pricefeed.NewStore(pricefeed.DefaultSeed(), pricefeed.WithLatency(cfg.FeedLatency()))
	svc := portfolio.NewService(store, portfolio.DefaultHoldings(), currency.NewFormatter(cfg.Currency))

	broker := stream.NewBroker()
	svc.OnUpdate(broker.PublishPrices)

	page, err := web.NewHandler(svc)
	if err != nil {
		slog.Error("failed to build dashboard page", "error", err)
		os.Exit(1)
	}

	h := api.NewServer(svc, page, stream.Handler(broker))
	srv := &http.Server{Addr: bindAddr, Handler: h}

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	if cfg.AutoRefreshCron != "" {
		sched := scheduler.New(rootCtx, svc)
		if err := sched.Register(cfg.AutoRefreshCron); err != nil {
			slog.Error("failed to register auto refresh", "spec", cfg.AutoRefreshCron, "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	go func() {
		slog.Info("dashboard listening", "addr", bindAddr, "url", "http://"+bindAddr+"/")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("dashboard server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("dashboard shutdown failed", "error", err)
	}
}

func setupLogger(level, filename string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return err
	}

	logWriter := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	h := slog.NewTextHandler(io.MultiWriter(os.Stdout, logWriter), &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(h))
	return nil
}
