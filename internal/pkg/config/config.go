package config

import (
	"io"
	"time"
)

// Config is the read-only view of process configuration.
//
// Keys are dotted paths ("mail.host"). Missing keys return the zero value of
// the requested type; callers decide whether that is acceptable.
type Config interface {
	io.Closer

	// GetBool returns the value for key as bool.
	GetBool(key string) bool
	// GetInt returns the value for key as int.
	GetInt(key string) int
	// GetFloat64 returns the value for key as float64.
	GetFloat64(key string) float64
	// GetString returns the value for key as string.
	GetString(key string) string
	// GetBytes returns the raw bytes of the string value for key.
	GetBytes(key string) []byte
	// GetSecond returns the value for key interpreted as seconds.
	GetSecond(key string) time.Duration
	// GetMinute returns the value for key interpreted as minutes.
	GetMinute(key string) time.Duration
	// GetArray returns the comma separated value for key, trimmed, without empty elements.
	GetArray(key string) []string
}
