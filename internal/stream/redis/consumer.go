package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Executor runs one comparison
type Executor interface {
	Execute(ctx context.Context, req models.CompareRequest) (models.ComparisonResult, error)
}

// StreamClient is the part of the go-redis client the consumer relies on.
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

type Consumer struct {
	client        StreamClient
	requestStream string
	resultStream  string
	groupID       string
	consumerName  string
	executor      Executor
	logger        *zerolog.Logger
	retryDelay    time.Duration
}

const defaultRetryDelay = time.Second

func NewConsumer(client StreamClient, cfg *RedisStreamConfig, exec Executor, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:        client,
		requestStream: cfg.RequestStream,
		resultStream:  cfg.ResultStream,
		groupID:       cfg.Group,
		consumerName:  cfg.ConsumerName,
		executor:      exec,
		logger:        logger,
		retryDelay:    defaultRetryDelay,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.requestStream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.requestStream).
		Str("results", c.resultStream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.requestStream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Dur("retry_in", c.retryDelay).Msg("Failed to read from stream")
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		for _, stream := range msgs {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	// Results and ACKs still go out after shutdown starts, otherwise the
	// entry stays pending and is never read again.
	done := context.WithoutCancel(ctx)

	req, err := DecodeRequest(msg.Values)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(done, msg.ID) // bad message, ACK to skip it
		return
	}

	result, err := c.executor.Execute(ctx, req)
	if err != nil {
		c.logger.Warn().Err(err).Str("id", msg.ID).Msg("Comparison rejected")
		c.publish(done, msg.ID, EncodeRejection(req.RequestID, err))
		c.ack(done, msg.ID)
		return
	}

	values, err := EncodeResult(result)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to encode result")
		c.ack(done, msg.ID)
		return
	}
	c.publish(done, msg.ID, values)

	c.logger.Info().
		Str("id", msg.ID).
		Str("request_id", result.RequestID).
		Str("verdict_kind", string(result.VerdictKind)).
		Msg("Comparison complete")

	c.ack(done, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, msgID string, values map[string]any) {
	if c.resultStream == "" {
		return
	}
	if err := c.client.XAdd(ctx, &redis.XAddArgs{Stream: c.resultStream, Values: values}).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to publish result")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.requestStream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
