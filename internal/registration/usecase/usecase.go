package usecase

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shandysiswandi/entityreg/internal/pkg/clock"
	"github.com/shandysiswandi/entityreg/internal/pkg/config"
	"github.com/shandysiswandi/entityreg/internal/pkg/goroutine"
	"github.com/shandysiswandi/entityreg/internal/pkg/instrument"
	"github.com/shandysiswandi/entityreg/internal/pkg/mail"
	"github.com/shandysiswandi/entityreg/internal/pkg/metrics"
	"github.com/shandysiswandi/entityreg/internal/pkg/otp"
	"github.com/shandysiswandi/entityreg/internal/pkg/uid"
	"github.com/shandysiswandi/entityreg/internal/pkg/validator"
	"github.com/shandysiswandi/entityreg/internal/registration/entity"
	"go.opentelemetry.io/otel/trace"
)

const (
	msgConfigError  = "Server configuration error. Email service not set up."
	msgInvalidOTP   = "Invalid or expired OTP. Please try again."
	publishTimeout  = 10 * time.Second
	keyTargetEmail  = "registration.target_email"
	taskPublishName = "publish registration_submitted"
)

// RegistrationSubmittedEvent is handed to the messaging outbound after a
// registration reached the operator mailbox.
type RegistrationSubmittedEvent struct {
	EventID      string
	Registration entity.Registration
}

type repoMail interface {
	Configured() bool
	Send(ctx context.Context, msg mail.Message) error
}

type repoMessaging interface {
	PublishRegistrationSubmitted(ctx context.Context, ev RegistrationSubmittedEvent) error
}

type otpService interface {
	otp.OTP
	Configured() bool
	Window() time.Duration
}

type Usecase struct {
	repoMail      repoMail
	repoMessaging repoMessaging
	validator     validator.Validator
	otp           otpService
	clock         clock.Clocker
	uuid          uid.StringID
	ins           instrument.Instrumentation
	metrics       metrics.Recorder
	goroutine     *goroutine.Manager
	sanitizer     *bluemonday.Policy
	templates     *template.Template

	operatorMailbox string
}

type Dependency struct {
	RepoMail      repoMail
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	OTP           otpService
	Clock         clock.Clocker
	UUID          uid.StringID
	Instrument    instrument.Instrumentation
	Metrics       metrics.Recorder
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	rec := dep.Metrics
	if rec == nil {
		rec = metrics.Noop{}
	}

	return &Usecase{
		repoMail:      dep.RepoMail,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		otp:           dep.OTP,
		clock:         dep.Clock,
		uuid:          dep.UUID,
		ins:           dep.Instrument,
		metrics:       rec,
		goroutine:     dep.Goroutine,
		sanitizer:     bluemonday.StrictPolicy(),
		templates:     template.Must(template.New("mail").Parse(mailTemplates)),

		operatorMailbox: operatorMailbox(dep.Config),
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("registration.usecase").Start(ctx, name)
}

// operatorMailbox returns the configured target or the built-in default.
// It is read once at construction.
func operatorMailbox(cfg config.Config) string {
	if cfg != nil {
		if v := cfg.GetString(keyTargetEmail); v != "" {
			return v
		}
	}
	return entity.DefaultOperatorMailbox
}

// clean strips every tag from user-supplied text. The result is escaped HTML,
// safe to embed as is.
func (s *Usecase) clean(v string) template.HTML {
	//nolint:gosec // bluemonday output is escaped
	return template.HTML(s.sanitizer.Sanitize(v))
}

func (s *Usecase) renderTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
