package worker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/infra/produce"
)

// CleanupConsumer deletes orphaned blobs after their catalog rows were
// removed. Deletion is best-effort; a failure requeues the message once the
// broker redelivers it.
type CleanupConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
}

func NewCleanupConsumer(channel *amqp.Channel, infra *infra.Infra) *CleanupConsumer {
	return &CleanupConsumer{
		channel: channel,
		infra:   infra,
	}
}

func (c *CleanupConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.CleanupQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register cleanup consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Started listening on queue: %s", produce.CleanupQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Cleanup Consumer] Channel closed")
					return
				}
				c.handleDelete(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *CleanupConsumer) handleDelete(ctx context.Context, msg amqp.Delivery) {
	var payload produce.CleanupMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to unmarshal cleanup message")
		_ = msg.Nack(false, false)
		return
	}

	if payload.Key == "" {
		c.infra.Logger.WarningWithContextf(ctx, "[Cleanup Consumer] Cleanup message without key, dropping")
		_ = msg.Nack(false, false)
		return
	}

	if err := c.infra.Minio.RemoveObject(ctx, payload.Key); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Cleanup Consumer] Failed to delete blob %s", payload.Key)
		_ = msg.Nack(false, true)
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Cleanup Consumer] Deleted blob %s", payload.Key)
	_ = msg.Ack(false)
}
