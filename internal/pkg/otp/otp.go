package otp

import (
	"time"
)

// OTP defines the contract used by request handlers.
type OTP interface {
	// Generate returns the code for identity in the window containing at.
	Generate(identity string, at time.Time) (string, error)
	// Validate checks code for identity at the given time.
	Validate(identity, code string, at time.Time) (bool, error)
	// Inspect classifies code for operator diagnostics.
	Inspect(identity, code string, at time.Time) (Outcome, error)
}

// Config configures EmailOTP.
type Config struct {
	// Secret is the shared HMAC key.
	Secret []byte
	// Window is the length of one derivation window.
	Window time.Duration
	// Tolerance is the number of prior windows still accepted.
	Tolerance int
}

// EmailOTP implements OTP with the stateless email scheme.
type EmailOTP struct {
	secret    []byte
	window    int64
	tolerance int
}

// NewEmailOTP constructs an EmailOTP.
//
// A window shorter than one second falls back to five minutes, and a
// non-positive tolerance falls back to one prior window.
func NewEmailOTP(cfg Config) *EmailOTP {
	window := int64(cfg.Window / time.Second)
	if window <= 0 {
		window = DefaultWindowSeconds
	}

	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = 1
	}

	return &EmailOTP{
		secret:    append([]byte(nil), cfg.Secret...),
		window:    window,
		tolerance: tolerance,
	}
}

// Configured reports whether a secret is present.
func (o *EmailOTP) Configured() bool {
	return len(o.secret) > 0
}

// Window returns the window length.
func (o *EmailOTP) Window() time.Duration {
	return time.Duration(o.window) * time.Second
}

// Generate returns the code for identity in the window containing at.
func (o *EmailOTP) Generate(identity string, at time.Time) (string, error) {
	return Derive(identity, o.secret, WindowIndex(at.Unix(), o.window))
}

// Validate checks code for identity at the given time.
func (o *EmailOTP) Validate(identity, code string, at time.Time) (bool, error) {
	return Verify(identity, o.secret, code, at.Unix(), o.window, o.tolerance)
}

// Inspect classifies code for operator diagnostics.
func (o *EmailOTP) Inspect(identity, code string, at time.Time) (Outcome, error) {
	return Inspect(identity, o.secret, code, at.Unix(), o.window, o.tolerance)
}
