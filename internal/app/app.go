package app

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
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
	"go.uber.org/atomic"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	otp       *otp.EmailOTP

	// resources
	mail      mail.Mail
	messaging messaging.Publisher
	registry  *prometheus.Registry
	metrics   *metrics.Collector

	// server
	ready      *atomic.Bool
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		ready:  atomic.NewBool(false),
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initOTP()
	app.initMail()
	app.initMessaging()
	app.initMetrics()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	app.ready.Store(true)

	return app
}
