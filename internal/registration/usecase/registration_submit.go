package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/entityreg/internal/pkg/goerror"
	"github.com/shandysiswandi/entityreg/internal/pkg/mail"
	"github.com/shandysiswandi/entityreg/internal/pkg/otp"
	"github.com/shandysiswandi/entityreg/internal/registration/entity"
)

type SubmitInput struct {
	EntityName         string `validate:"required"`
	Website            string `validate:"required"`
	SEBIRegistrationNo string `validate:"required"`
	Address            string `validate:"required"`
	City               string `validate:"required"`
	State              string `validate:"required"`
	Country            string `validate:"required"`
	ContactPerson      string `validate:"required"`
	Designation        string `validate:"required"`
	EmailID            string `validate:"required,plausible_email"`
	Mobile             string `validate:"required"`
	OTP                string `validate:"required"`
}

// Submit verifies the OTP for EmailID and forwards the registration to the
// operator mailbox. Wrong and expired codes are indistinguishable to the caller.
func (s *Usecase) Submit(ctx context.Context, in SubmitInput) error {
	ctx, span := s.startSpan(ctx, "Submit")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !s.otp.Configured() || !s.repoMail.Configured() {
		slog.ErrorContext(ctx, "otp secret or mail transport is not configured")
		return goerror.NewConfiguration("otp secret or mail transport", msgConfigError)
	}

	now := s.clock.Now()

	ok, err := s.otp.Validate(in.EmailID, in.OTP, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to verify otp", "error", err)
		return goerror.NewServer(err)
	}
	if !ok {
		outcome, err := s.otp.Inspect(in.EmailID, in.OTP, now)
		if err != nil {
			outcome = otp.OutcomeMismatch
		}
		s.metrics.OTPVerified(outcome.String())
		slog.WarnContext(ctx, "otp rejected", "email", in.EmailID, "outcome", outcome.String())
		return goerror.NewBusiness(msgInvalidOTP, goerror.CodeUnauthorized)
	}
	s.metrics.OTPVerified(otp.OutcomeAccepted.String())

	reg := entity.Registration{
		EntityName:         in.EntityName,
		Website:            in.Website,
		SEBIRegistrationNo: in.SEBIRegistrationNo,
		Address:            in.Address,
		City:               in.City,
		State:              in.State,
		Country:            in.Country,
		ContactPerson:      in.ContactPerson,
		Designation:        in.Designation,
		EmailID:            in.EmailID,
		Mobile:             in.Mobile,
		SubmittedAt:        now,
	}

	body, err := s.renderTemplate(tplRegistration, map[string]any{
		"EntityName":         s.clean(reg.EntityName),
		"Website":            s.clean(reg.Website),
		"WebsiteURL":         reg.Website,
		"SEBIRegistrationNo": s.clean(reg.SEBIRegistrationNo),
		"Address":            s.clean(reg.AddressLine()),
		"ContactPerson":      s.clean(reg.ContactPerson),
		"Designation":        s.clean(reg.Designation),
		"EmailID":            s.clean(reg.EmailID),
		"Mobile":             s.clean(reg.Mobile),
		"SubmittedAt":        now.UTC().Format(time.RFC1123),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to render registration email", "error", err)
		return goerror.NewServer(err)
	}

	target := s.operatorMailbox
	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{target},
		Subject:  reg.Subject(),
		HTMLBody: body,
	}); err != nil {
		s.metrics.MailSendFailed("registration")
		slog.ErrorContext(ctx, "failed to send registration email", "target", target, "error", err)
		return goerror.NewUnavailable(err, "Failed to send form details email. Please try again later.")
	}

	s.metrics.RegistrationSubmitted()
	slog.InfoContext(ctx, "registration forwarded", "entity_name", reg.EntityName, "target", target)

	s.publishSubmitted(ctx, RegistrationSubmittedEvent{EventID: s.uuid.Generate(), Registration: reg})

	return nil
}

// publishSubmitted hands the event to the broker in the background. The
// request context is detached so the publish outlives the response.
func (s *Usecase) publishSubmitted(ctx context.Context, ev RegistrationSubmittedEvent) {
	if s.repoMessaging == nil {
		return
	}

	s.goroutine.Go(context.WithoutCancel(ctx), taskPublishName, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		if err := s.repoMessaging.PublishRegistrationSubmitted(ctx, ev); err != nil {
			slog.ErrorContext(ctx, "failed to publish registration submitted", "event_id", ev.EventID, "error", err)
		}
		return nil
	})
}
