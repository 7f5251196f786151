package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	PlaybackService *PlaybackService
	CleanupService  *CleanupService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	playbackService := InitPlaybackService(channel)
	if playbackService == nil {
		panic("Failed to initialize Playback produce service")
	}

	cleanupService := InitCleanupService(channel)
	if cleanupService == nil {
		panic("Failed to initialize Cleanup produce service")
	}

	produceInstance = &Produce{
		PlaybackService: playbackService,
		CleanupService:  cleanupService,
	}

	return produceInstance
}
