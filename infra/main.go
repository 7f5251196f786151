package infra

import (
	"context"
	"fmt"

	"github.com/Jeremi16/synify-be/config"
	"github.com/Jeremi16/synify-be/infra/produce"
)

type Infra struct {
	Postgres   *PostgresClient
	Redis      *RedisClient
	Logger     *LoggerClient
	RabbitMQ   *RabbitMQClient
	Produce    *produce.Produce
	Minio      *MinioClient
	Identity   *IdentityService
	Downloader *DownloaderService
	Spotify    *SpotifyService
	AI         *AIService
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)
	if rabbitMQ == nil {
		panic("Failed to initialize RabbitMQ service")
	}

	produceService := produce.InitProduce(rabbitMQ.Channel)
	if produceService == nil {
		panic("Failed to initialize Produce service")
	}

	minio := InitMinioClient(cfg.EnvConfig)
	if minio == nil {
		panic("Failed to initialize MinIO service")
	}
	if err := minio.EnsureBucket(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure media bucket: %v", err))
	}

	identity := InitIdentityService(cfg.EnvConfig)
	if identity == nil {
		panic("Failed to initialize Identity service")
	}

	downloader := InitDownloaderService(cfg.EnvConfig)
	if downloader == nil {
		panic("Failed to initialize Downloader service")
	}

	// Spotify and AI are optional; ingestion degrades gracefully without them.
	spotify := InitSpotifyService(cfg.EnvConfig)
	ai := InitAIService(cfg.EnvConfig)

	infraInstance = &Infra{
		Postgres:   postgres,
		Redis:      redis,
		Logger:     logger,
		RabbitMQ:   rabbitMQ,
		Produce:    produceService,
		Minio:      minio,
		Identity:   identity,
		Downloader: downloader,
		Spotify:    spotify,
		AI:         ai,
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
