package messaging

import (
	"context"
	"sync"
	"time"
)

// Noop accepts and discards every message.
type Noop struct{}

// NewNoop returns a Publisher that drops messages.
func NewNoop() *Noop {
	return &Noop{}
}

// Publish returns immediately.
func (*Noop) Publish(ctx context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	return PublishResult{Topic: destination, Timestamp: time.Now()}, nil
}

// Close is a no-op.
func (*Noop) Close() error {
	return nil
}

// Published is a message captured by Memory.
type Published struct {
	Destination string
	Message     OutgoingMessage
}

// Memory keeps published messages in memory. It backs tests and the "memory"
// driver for local runs without a broker.
type Memory struct {
	mu       sync.Mutex
	messages []Published
	closed   bool
	// Err, when set, is returned by Publish instead of recording.
	Err error
}

// NewMemory returns an empty in-memory publisher.
func NewMemory() *Memory {
	return &Memory{}
}

// Publish records msg under destination.
func (m *Memory) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return PublishResult{}, ErrClosed
	}
	if m.Err != nil {
		return PublishResult{}, m.Err
	}
	m.messages = append(m.messages, Published{Destination: destination, Message: msg})
	return PublishResult{Topic: destination, Timestamp: time.Now()}, nil
}

// Messages returns a copy of everything published so far.
func (m *Memory) Messages() []Published {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Published(nil), m.messages...)
}

// Close makes further publishes fail with ErrClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
