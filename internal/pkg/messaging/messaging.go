package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrClosed is returned when publishing through a closed client.
var ErrClosed = errors.New("messaging: client is closed")

// Publisher publishes messages to a destination (topic or subject).
type Publisher interface {
	io.Closer

	// Publish sends a message to the destination.
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// OutgoingMessage represents a broker-agnostic message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte
	// Key is used by Kafka for partitioning and ignored elsewhere.
	Key []byte
	// Headers are dropped by brokers that have no header support (NSQ).
	Headers []Header
}

// Header is a key/value pair used for message headers.
type Header struct {
	// Key is the header name.
	Key string
	// Value is the header value.
	Value []byte
}

// PublishResult carries what the broker reported on acceptance.
type PublishResult struct {
	// Topic is the destination used.
	Topic string
	// Timestamp is when the client handed the message to the broker.
	Timestamp time.Time
}
