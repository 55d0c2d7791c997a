package redis

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/prompt-compare/internal/models"
	"github.com/redis/go-redis/v9"
)

// Publisher appends compare requests to the request stream.
type Publisher struct {
	client StreamClient
	stream string
}

func NewPublisher(client StreamClient, stream string) *Publisher {
	return &Publisher{client: client, stream: stream}
}

// Publish returns the stream entry ID assigned by Redis.
func (p *Publisher) Publish(ctx context.Context, req models.CompareRequest) (string, error) {
	values, err := EncodeRequest(req)
	if err != nil {
		return "", err
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Result()
	if err != nil {
		return "", fmt.Errorf("publish to %s: %w", p.stream, err)
	}
	return id, nil
}
