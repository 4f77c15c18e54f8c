package main

import (
	"context"
	"os"

	"securitybot/config"
	"securitybot/pkg/logger"
	"securitybot/storage/flagstore"
)

// Wipes every persisted device flag, sending all chats back through
// onboarding and login.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	kv, err := flagstore.Open(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to open flag store", logger.Error(err))
		os.Exit(1)
	}
	defer kv.Close()

	if err := kv.Clear(context.Background()); err != nil {
		log.Error("Failed to clear flags", logger.Error(err))
		return
	}
	log.Info("Successfully cleared all device flags", logger.String("backend", cfg.FlagStore))
}
