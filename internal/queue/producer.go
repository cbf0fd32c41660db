// Package queue publishes confirmation-notification messages for delivery by
// the external sender worker. The intake layer only decides THAT a
// confirmation is owed; delivery lives on the other side of the stream.
package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"sauti.app/api/internal/model"
)

type ConfirmationMessage struct {
	ReportID  int64
	Channel   model.Platform
	Recipient string
	Category  model.Category
}

type Producer interface {
	Enqueue(ctx context.Context, msg ConfirmationMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg ConfirmationMessage) error {
	fields := map[string]any{
		"report_id": msg.ReportID,
		"channel":   string(msg.Channel),
		"recipient": msg.Recipient,
		"category":  string(msg.Category),
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue confirmation: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued confirmation", "report_id", msg.ReportID, "channel", msg.Channel)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
