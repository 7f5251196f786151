package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/consumer/worker"
	infraPkg "github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	playbackConsumer := worker.NewPlaybackConsumer(infra.RabbitMQ.Channel, infra, repo)
	if err := playbackConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start Playback consumer: %v", err)
		log.Fatalf("Failed to start Playback consumer: %v", err)
	}

	cleanupConsumer := worker.NewCleanupConsumer(infra.RabbitMQ.Channel, infra)
	if err := cleanupConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start Cleanup consumer: %v", err)
		log.Fatalf("Failed to start Cleanup consumer: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down consumer...")
	cancel()

	infra.Logger.InfoWithContextf(ctx, "Consumer exited properly")
	infra.Logger.Shutdown(context.Background())
}
