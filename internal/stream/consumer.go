package stream

import "context"

// StreamConsumer reads compare requests from a message stream until ctx is done.
type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}
