package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GrowthCalc/internal/api"
	"GrowthCalc/internal/cache"
	"GrowthCalc/internal/config"
	"GrowthCalc/internal/model"
	"GrowthCalc/internal/notifier"
	"GrowthCalc/internal/plan"
	"GrowthCalc/internal/recorder"
	"GrowthCalc/internal/scheduler"
	"GrowthCalc/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] GrowthCalc starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	unit := cfg.CurrencyUnit()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init plan store
	plans, err := plan.NewStore(cfg.Plan.StateFile, model.Plan{
		InitialInvestment: cfg.Plan.InitialInvestment,
		MonthlyInvestment: cfg.Plan.MonthlyInvestment,
		ReturnRate:        cfg.Plan.ReturnRate,
		Years:             cfg.Plan.Years,
		Locale:            cfg.Locale.Default,
	}, cfg.Plan.MaxYears)
	if err != nil {
		log.Fatalf("[FATAL] init plan store: %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init cache
	var resultCache cache.Cache
	if cfg.Cache.RedisAddr != "" {
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		rc, err := cache.NewRedisCache(pingCtx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		pingCancel()
		if err != nil {
			log.Printf("[WARN] init redis cache failed, using memory: %v", err)
			resultCache = cache.NewMemoryCache()
		} else {
			log.Printf("[INFO] redis cache: %s", cfg.Cache.RedisAddr)
			resultCache = rc
			defer rc.Close()
		}
	} else {
		resultCache = cache.NewMemoryCache()
	}

	svc := service.NewProjectionService(resultCache, rec)

	// Init Telegram notifier
	var tn *notifier.TelegramNotifier
	var sender scheduler.Sender
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		sender = tn
	} else {
		log.Println("[INFO] telegram not configured, notifications disabled")
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, svc, plans, sender, unit)
	if err := sched.RegisterAll(cfg.Schedule.ReportCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing report task now")
		go sched.RunReportNow()
	}

	// Init HTTP API
	limiter := api.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	limiter.SetRouteLimits(cfg.Server.RouteLimits)
	defer limiter.Stop()
	handler := api.NewHandler(svc, plans, rec, unit)
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Routes(limiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("[INFO] HTTP API listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	log.Println("[INFO] GrowthCalc is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		log.Printf("[ERROR] http server: %v", err)
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] GrowthCalc stopped")
}
