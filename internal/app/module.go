package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/entityreg/internal/registration"
)

func (a *App) initModules() {
	if err := registration.New(registration.Dependency{
		Router:     a.router,
		Goroutine:  a.goroutine,
		Messaging:  a.messaging,
		Config:     a.config,
		Instrument: a.ins,
		Metrics:    a.metrics,
		UUID:       a.uuid,
		Clock:      a.clock,
		OTP:        a.otp,
		Validator:  a.validator,
		Mail:       a.mail,
	}); err != nil {
		slog.Error("failed to init module registration", "error", err)
		os.Exit(1)
	}
}
