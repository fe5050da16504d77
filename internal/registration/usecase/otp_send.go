package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/entityreg/internal/pkg/goerror"
	"github.com/shandysiswandi/entityreg/internal/pkg/mail"
)

type SendOTPInput struct {
	Email string `validate:"required,plausible_email"`
}

// SendOTP derives the code for the current window and mails it to the address.
// The address is used exactly as given.
func (s *Usecase) SendOTP(ctx context.Context, in SendOTPInput) error {
	ctx, span := s.startSpan(ctx, "SendOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if !s.otp.Configured() || !s.repoMail.Configured() {
		slog.ErrorContext(ctx, "otp secret or mail transport is not configured")
		return goerror.NewConfiguration("otp secret or mail transport", msgConfigError)
	}

	code, err := s.otp.Generate(in.Email, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to derive otp", "error", err)
		return goerror.NewServer(err)
	}

	body, err := s.renderTemplate(tplOTP, map[string]any{
		"Code":         code,
		"ValidMinutes": int(s.otp.Window().Minutes()),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to render otp email", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  "Your OTP for Entity Registration",
		HTMLBody: body,
	}); err != nil {
		s.metrics.MailSendFailed("otp")
		slog.ErrorContext(ctx, "failed to send otp email", "email", in.Email, "error", err)
		return goerror.NewUnavailable(err, "Failed to send OTP email. Please try again later.")
	}

	s.metrics.OTPIssued()
	slog.InfoContext(ctx, "otp sent", "email", in.Email)

	return nil
}
