package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CleanupQueue      = "storage.cleanup"
	CleanupRoutingKey = "storage.cleanup"
)

// CleanupMessage asks the consumer to delete an orphaned blob after its
// catalog row was removed. The row is authoritative; this is best-effort.
type CleanupMessage struct {
	Key         string `json:"key"`
	RequestedAt int64  `json:"requested_at"`
}

type CleanupService struct {
	channel *amqp.Channel
}

func InitCleanupService(channel *amqp.Channel) *CleanupService {
	_, err := channel.QueueDeclare(
		CleanupQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare cleanup queue: " + err.Error())
	}

	if err := channel.QueueBind(CleanupQueue, CleanupRoutingKey, EventsExchange, false, nil); err != nil {
		panic("Failed to bind cleanup queue: " + err.Error())
	}

	return &CleanupService{channel: channel}
}

func (s *CleanupService) PublishDelete(ctx context.Context, key string) error {
	body, err := json.Marshal(CleanupMessage{
		Key:         key,
		RequestedAt: time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		EventsExchange,
		CleanupRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
