// Package messaging publishes domain events to a message broker.
//
// Business code depends on Publisher only. The concrete broker (NATS, Kafka or
// NSQ) is picked at startup by NewFromDriver; the "none" driver discards
// events so the service runs without a broker.
package messaging
