package registration

import (
	"github.com/shandysiswandi/entityreg/internal/pkg/clock"
	"github.com/shandysiswandi/entityreg/internal/pkg/config"
	"github.com/shandysiswandi/entityreg/internal/pkg/goroutine"
	"github.com/shandysiswandi/entityreg/internal/pkg/instrument"
	"github.com/shandysiswandi/entityreg/internal/pkg/mail"
	"github.com/shandysiswandi/entityreg/internal/pkg/messaging"
	"github.com/shandysiswandi/entityreg/internal/pkg/metrics"
	"github.com/shandysiswandi/entityreg/internal/pkg/otp"
	"github.com/shandysiswandi/entityreg/internal/pkg/router"
	"github.com/shandysiswandi/entityreg/internal/pkg/uid"
	"github.com/shandysiswandi/entityreg/internal/pkg/validator"
	"github.com/shandysiswandi/entityreg/internal/registration/inbound"
	"github.com/shandysiswandi/entityreg/internal/registration/outbound/email"
	"github.com/shandysiswandi/entityreg/internal/registration/outbound/mq"
	"github.com/shandysiswandi/entityreg/internal/registration/usecase"
)

// Dependency lists what the registration module needs. Mail may be nil: the
// endpoints then answer with a configuration error instead of failing startup.
type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Messaging  messaging.Publisher        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Metrics    metrics.Recorder           `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	OTP        *otp.EmailOTP              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Mail       mail.Mail
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoMail:      email.New(dep.Mail, dep.Instrument),
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Validator:     dep.Validator,
		Config:        dep.Config,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		UUID:          dep.UUID,
		Instrument:    dep.Instrument,
		Metrics:       dep.Metrics,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
