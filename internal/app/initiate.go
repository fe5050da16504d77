package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nsqio/go-nsq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"github.com/samber/lo"
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
	"google.golang.org/api/option"
)

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := config.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("instrument.service_name"),
		ServiceVersion:   a.config.GetString("instrument.service_version"),
		Environment:      a.config.GetString("instrument.env"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.config.GetString("instrument.log_level"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))

	validator, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = validator
}

// initOTP never fails: a missing secret is reported per request so the
// health endpoint stays reachable while the deployment is being fixed.
func (a *App) initOTP() {
	a.otp = otp.NewEmailOTP(otp.Config{
		Secret:    a.config.GetBytes("otp.secret"),
		Window:    a.config.GetMinute("otp.window_minutes"),
		Tolerance: a.config.GetInt("otp.tolerance"),
	})

	if !a.otp.Configured() {
		slog.Warn("otp secret is not configured, registration endpoints will answer with a configuration error")
	}
}

func (a *App) initMail() {
	host := a.config.GetString("mail.host")
	port := a.config.GetInt("mail.port")
	username := a.config.GetString("mail.username")
	password := a.config.GetString("mail.password")

	if host == "" || port == 0 || username == "" || password == "" {
		slog.Warn("mail transport is not configured, registration endpoints will answer with a configuration error")
		return
	}

	smtp, err := mail.NewSMTP(mail.SMTPConfig{
		Host:               host,
		Port:               port,
		Username:           username,
		Password:           password,
		From:               a.config.GetString("mail.from"),
		InsecureSkipVerify: a.config.GetBool("mail.insecure_skip_verify"),
		DialTimeout:        a.config.GetSecond("mail.dial_timeout_seconds"),
		SendTimeout:        a.config.GetSecond("mail.send_timeout_seconds"),
	})
	if err != nil {
		slog.Error("failed to init mail", "error", err)
		os.Exit(1)
	}

	a.mail = mail.NewRetrying(smtp, mail.RetryConfig{
		MaxRetries: uint64(max(a.config.GetInt("mail.retry.max_retries"), 0)),
		Base:       time.Duration(a.config.GetInt("mail.retry.base_millis")) * time.Millisecond,
		Cap:        a.config.GetSecond("mail.retry.cap_seconds"),
	})
}

func (a *App) initMessaging() {
	driver := a.config.GetString("messaging.driver")
	client, err := messaging.NewFromDriver(a.ctx, driver, messaging.FactoryOptions{
		NSQ: messaging.NSQConfig{
			ProducerAddr: a.config.GetString("messaging.nsq.producer_addr"),
			ProducerConfig: func() *nsq.Config {
				cfg := nsq.NewConfig()
				cfg.DialTimeout = a.config.GetSecond("messaging.nsq.dial_timeout_seconds")
				cfg.WriteTimeout = a.config.GetSecond("messaging.nsq.write_timeout_seconds")
				return cfg
			}(),
		},
		Kafka: messaging.KafkaConfig{
			Brokers:      a.config.GetArray("messaging.kafka.brokers"),
			WriteTimeout: a.config.GetSecond("messaging.kafka.write_timeout_seconds"),
		},
		NATS: messaging.NATSConfig{
			URL:  a.config.GetString("messaging.nats.url"),
			Name: a.config.GetString("messaging.nats.name"),
			Options: []nats.Option{
				nats.MaxReconnects(a.config.GetInt("messaging.nats.max_reconnects")),
				nats.Timeout(a.config.GetSecond("messaging.nats.timeout_seconds")),
				nats.ReconnectWait(a.config.GetSecond("messaging.nats.reconnect_wait_seconds")),
				nats.RetryOnFailedConnect(a.config.GetBool("messaging.nats.retry_on_failed_connect")),
			},
		},
		PubSub: messaging.PubSubConfig{
			ProjectID: a.config.GetString("messaging.pubsub.project_id"),
			ClientOptions: func() []option.ClientOption {
				var opts []option.ClientOption
				if v := a.config.GetString("messaging.pubsub.endpoint"); v != "" {
					opts = append(opts, option.WithEndpoint(v))
				}
				if a.config.GetBool("messaging.pubsub.without_auth") {
					opts = append(opts, option.WithoutAuthentication())
				}
				return opts
			}(),
		},
	})
	if err != nil {
		slog.Error("failed to init messaging", "error", err, "driver", driver)
		os.Exit(1)
	}

	a.messaging = client
}

func (a *App) initMetrics() {
	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = metrics.NewCollector(a.registry)
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		Instrument: a.ins,
		Ready:      a.ready,
	})
	a.router.GETRaw("/metrics", metrics.Handler(a.registry))

	origins := a.config.GetArray("app.server.cors")
	routerWithCORS := cors.New(cors.Options{
		AllowedOrigins: lo.Ternary(len(origins) > 0, origins, []string{"*"}),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(a.router)

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("app.server.http.address"),
		Handler:           routerWithCORS,
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

func (a *App) initClosers() {
	a.closers = []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "Instrument",
			fn: func(ctx context.Context) error {
				return a.ins.Shutdown(ctx)
			},
		},
		{
			name: "Messaging",
			fn: func(context.Context) error {
				return a.messaging.Close()
			},
		},
		{
			name: "Mail",
			fn: func(context.Context) error {
				if a.mail == nil {
					return nil
				}

				return a.mail.Close()
			},
		},
		{
			name: "Config",
			fn: func(context.Context) error {
				return a.config.Close()
			},
		},
	}
}
