package mq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shandysiswandi/entityreg/internal/pkg/instrument"
	"github.com/shandysiswandi/entityreg/internal/pkg/messaging"
	"github.com/shandysiswandi/entityreg/internal/registration/entity"
	"github.com/shandysiswandi/entityreg/internal/registration/usecase"
	"github.com/shandysiswandi/entityreg/internal/shared/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessaging_PublishRegistrationSubmitted(t *testing.T) {
	pub := messaging.NewMemory()
	m := NewMessaging(pub, instrument.NewNoop())

	at := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	ctx := instrument.SetCorrelationID(context.Background(), "cid-9")
	err := m.PublishRegistrationSubmitted(ctx, usecase.RegistrationSubmittedEvent{
		EventID: "ev-1",
		Registration: entity.Registration{
			EntityName:  "Acme Capital",
			EmailID:     "user@example.com",
			SubmittedAt: at,
		},
	})
	require.NoError(t, err)

	got := pub.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, event.RegistrationSubmittedDestination, got[0].Destination)
	assert.Equal(t, []byte("user@example.com"), got[0].Message.Key)
	assert.Equal(t, []messaging.Header{{Key: "cID", Value: []byte("cid-9")}}, got[0].Message.Headers)

	var msg event.RegistrationSubmittedMessage
	require.NoError(t, json.Unmarshal(got[0].Message.Body, &msg))
	assert.Equal(t, "ev-1", msg.EventID)
	assert.Equal(t, "Acme Capital", msg.EntityName)
	assert.True(t, at.Equal(msg.SubmittedAt))
}

func TestMessaging_PublishError(t *testing.T) {
	pub := messaging.NewMemory()
	require.NoError(t, pub.Close())

	err := NewMessaging(pub, instrument.NewNoop()).PublishRegistrationSubmitted(context.Background(), usecase.RegistrationSubmittedEvent{})
	assert.ErrorIs(t, err, messaging.ErrClosed)
}
