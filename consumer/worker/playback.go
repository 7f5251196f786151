package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Jeremi16/synify-be/infra"
	"github.com/Jeremi16/synify-be/infra/produce"
	"github.com/Jeremi16/synify-be/repository"
)

// PlaybackConsumer applies playback events: bump the song's play count and
// append a history row for known users. Delivery is at-least-once, so a
// replayed message can double-count; that is accepted for a popularity
// signal.
type PlaybackConsumer struct {
	channel    *amqp.Channel
	infra      *infra.Infra
	repository *repository.Repository
}

func NewPlaybackConsumer(channel *amqp.Channel, infra *infra.Infra, repo *repository.Repository) *PlaybackConsumer {
	return &PlaybackConsumer{
		channel:    channel,
		infra:      infra,
		repository: repo,
	}
}

func (c *PlaybackConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.PlaybackQueue,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register playback consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Playback Consumer] Started listening on queue: %s", produce.PlaybackQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Playback Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Playback Consumer] Channel closed")
					return
				}
				c.handlePlayed(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *PlaybackConsumer) handlePlayed(ctx context.Context, msg amqp.Delivery) {
	var payload produce.PlaybackMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Playback Consumer] Failed to unmarshal playback message")
		_ = msg.Nack(false, false)
		return
	}

	songID, err := uuid.Parse(payload.SongID)
	if err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Playback Consumer] Invalid song ID %q", payload.SongID)
		_ = msg.Nack(false, false)
		return
	}

	if err := c.repository.SongRepo.IncrementPlayCount(songID); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Playback Consumer] Failed to increment play count for song %s", songID)
		_ = msg.Nack(false, true)
		return
	}

	// The history row is secondary; losing it never requeues the event.
	if !payload.Anonymous && payload.UserID != "" {
		if userID, err := uuid.Parse(payload.UserID); err == nil {
			playedAt := time.Unix(payload.PlayedAt, 0)
			if err := c.repository.HistoryRepo.Append(userID, songID, playedAt); err != nil {
				c.infra.Logger.WarningWithContextf(ctx, "[Playback Consumer] Failed to append history for user %s: %v", userID, err)
			}
		}
	}

	_ = msg.Ack(false)
}
