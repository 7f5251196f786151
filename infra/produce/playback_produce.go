package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange = "synify.events"

	PlaybackQueue      = "playback.events"
	PlaybackRoutingKey = "playback.played"
)

// PlaybackMessage records one playback event. The consumer increments the
// song's play count and appends a history row; both are at-least-once side
// effects and never block the stream-URL response.
type PlaybackMessage struct {
	UserID    string `json:"user_id,omitempty"`
	SongID    string `json:"song_id"`
	PlayedAt  int64  `json:"played_at"`
	Anonymous bool   `json:"anonymous"`
}

type PlaybackService struct {
	channel *amqp.Channel
}

func InitPlaybackService(channel *amqp.Channel) *PlaybackService {
	err := channel.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare events exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		PlaybackQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare playback queue: " + err.Error())
	}

	if err := channel.QueueBind(PlaybackQueue, PlaybackRoutingKey, EventsExchange, false, nil); err != nil {
		panic("Failed to bind playback queue: " + err.Error())
	}

	return &PlaybackService{channel: channel}
}

func (s *PlaybackService) PublishPlayed(ctx context.Context, msg PlaybackMessage) error {
	if msg.PlayedAt == 0 {
		msg.PlayedAt = time.Now().Unix()
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		EventsExchange,
		PlaybackRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
