package mail

import (
	"context"
	"errors"
	"log/slog"
	"net/textproto"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryConfig tunes Retrying. Zero values fall back to the defaults below.
type RetryConfig struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries uint64
	// Base is the first backoff step.
	Base time.Duration
	// Cap bounds a single backoff step.
	Cap time.Duration
}

const (
	defaultRetryBase = 200 * time.Millisecond
	defaultRetryCap  = 2 * time.Second
)

// Retrying retries transient send failures of the wrapped Mail with a capped
// Fibonacci backoff. Permanent failures (bad sender or recipients, SMTP 5xx,
// a done context) are returned at once.
type Retrying struct {
	next Mail
	cfg  RetryConfig
}

// NewRetrying wraps next.
func NewRetrying(next Mail, cfg RetryConfig) *Retrying {
	if cfg.Base <= 0 {
		cfg.Base = defaultRetryBase
	}
	if cfg.Cap <= 0 {
		cfg.Cap = defaultRetryCap
	}
	return &Retrying{next: next, cfg: cfg}
}

// Send delivers msg, retrying transient failures until the budget or ctx runs out.
func (r *Retrying) Send(ctx context.Context, msg Message) error {
	b := retry.NewFibonacci(r.cfg.Base)
	b = retry.WithCappedDuration(r.cfg.Cap, b)
	b = retry.WithMaxRetries(r.cfg.MaxRetries, b)

	attempt := 0
	return retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		err := r.next.Send(ctx, msg)
		if err == nil || permanent(err) {
			return err
		}

		slog.WarnContext(ctx, "mail: send failed, will retry", "attempt", attempt, "error", err)
		return retry.RetryableError(err)
	})
}

// Close closes the wrapped Mail.
func (r *Retrying) Close() error {
	return r.next.Close()
}

func permanent(err error) bool {
	if errors.Is(err, ErrSMTPSendTimeout) {
		return false
	}
	if errors.Is(err, ErrSMTPNoRecipients) ||
		errors.Is(err, ErrSMTPNoSender) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var tpErr *textproto.Error
	return errors.As(err, &tpErr) && tpErr.Code >= 500
}
