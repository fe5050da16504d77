package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/entityreg/internal/pkg/instrument"
	"github.com/shandysiswandi/entityreg/internal/pkg/messaging"
	"github.com/shandysiswandi/entityreg/internal/registration/usecase"
	"github.com/shandysiswandi/entityreg/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishRegistrationSubmitted(ctx context.Context, ev usecase.RegistrationSubmittedEvent) error {
	ctx, span := m.ins.Tracer("registration.outbound.mq").Start(ctx, "PublishRegistrationSubmitted")
	defer span.End()

	reg := ev.Registration
	body, err := json.Marshal(event.RegistrationSubmittedMessage{
		EventID:            ev.EventID,
		EntityName:         reg.EntityName,
		Website:            reg.Website,
		SEBIRegistrationNo: reg.SEBIRegistrationNo,
		Address:            reg.Address,
		City:               reg.City,
		State:              reg.State,
		Country:            reg.Country,
		ContactPerson:      reg.ContactPerson,
		Designation:        reg.Designation,
		EmailID:            reg.EmailID,
		Mobile:             reg.Mobile,
		SubmittedAt:        reg.SubmittedAt.UTC(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if _, err := m.client.Publish(ctx, event.RegistrationSubmittedDestination, messaging.OutgoingMessage{
		Body:    body,
		Key:     []byte(reg.EmailID),
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(instrument.GetCorrelationID(ctx))}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
