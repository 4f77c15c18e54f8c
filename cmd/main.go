package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"securitybot/config"
	"securitybot/pkg/api"
	"securitybot/pkg/bot"
	"securitybot/pkg/logger"
	"securitybot/service"
	"securitybot/storage/flagstore"
	"securitybot/storage/mock"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := flagstore.Open(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to open flag store", logger.Error(err), logger.String("backend", cfg.FlagStore))
		os.Exit(1)
	}
	stg := mock.New(kv, log)
	defer stg.Close()

	svc := service.New(stg, log, service.Options{
		SubmitDelay: cfg.SubmitDelay,
		LookupDelay: cfg.LookupDelay,
		Now:         time.Now,
	})

	securityBot, err := bot.New(&cfg, svc, log)
	if err != nil {
		log.Error("Failed to initialize bot", logger.Error(err))
		os.Exit(1)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		securityBot.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := api.Run(ctx, &cfg, svc, log); err != nil {
			log.Error("HTTP API stopped", logger.Error(err))
			stop()
		}
	}()

	log.Info("🚀 Security bot is running", logger.String("flag_store", cfg.FlagStore), logger.Int("port", cfg.AppPort))

	<-ctx.Done()
	log.Info("Stopping bot and shutting down...")
	wg.Wait()
}
