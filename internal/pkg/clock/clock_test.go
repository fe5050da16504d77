package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeClocker_Now(t *testing.T) {
	before := time.Now()
	got := New().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed_Now(t *testing.T) {
	c := NewFixedUnix(1_700_000_000)

	assert.Equal(t, int64(1_700_000_000), c.Now().Unix())
	assert.Equal(t, c.Now(), c.Now())

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, at, NewFixed(at).Now())
}
