package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/omkarsindha/GSM-Alarm/common/logger"
	commonredis "github.com/omkarsindha/GSM-Alarm/common/redis"
	"github.com/omkarsindha/GSM-Alarm/internal/client"
	"github.com/omkarsindha/GSM-Alarm/internal/config"
	"github.com/omkarsindha/GSM-Alarm/internal/flash"
	httpapi "github.com/omkarsindha/GSM-Alarm/internal/http"
	"github.com/omkarsindha/GSM-Alarm/internal/service"
	"github.com/omkarsindha/GSM-Alarm/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (default $CONFIG_FILE)")
	flag.Parse()

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "labmon-dashboard: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "labmon-dashboard")
	if err != nil {
		fmt.Fprintf(os.Stderr, "labmon-dashboard: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Flash messages go to Redis when enabled and reachable, memory otherwise.
	var kv store.KV = store.NewMemoryKV()
	var redisClient *commonredis.Client
	if cfg.Redis.Enabled {
		redisClient = commonredis.NewRedisClient(&cfg.Redis)
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := commonredis.Ping(pingCtx, redisClient); err != nil {
			log.Warn("Redis enabled but unreachable, falling back to in-memory flash store",
				zap.String("addr", cfg.Redis.Addr),
				zap.Error(err),
			)
			_ = commonredis.Close(redisClient)
			redisClient = nil
		} else {
			kv = store.NewRedisKV(redisClient)
			log.Info("Redis flash store enabled", zap.String("addr", cfg.Redis.Addr))
		}
		pingCancel()
	}

	backend := client.NewBackendClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	dash, err := httpapi.NewDashboardHandler(backend, flash.NewStore(kv, cfg.Flash.TTL, log), log)
	if err != nil {
		log.Fatal("Failed to create dashboard handler", zap.Error(err))
	}
	static, err := httpapi.NewStaticProxy(cfg.Backend.BaseURL, log)
	if err != nil {
		log.Fatal("Failed to create static proxy", zap.Error(err))
	}

	router := httpapi.NewRouter(log)
	router.RegisterDashboardRoutes(dash)
	router.RegisterStaticRoutes(static)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)
	log.Info("Backend configured",
		zap.String("base_url", backend.BaseURL()),
		zap.Duration("timeout", cfg.Backend.Timeout),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server stopped", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Warn("Graceful shutdown failed", zap.Error(err))
	}
	if redisClient != nil {
		_ = commonredis.Close(redisClient)
	}
}
