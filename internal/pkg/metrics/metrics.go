// Package metrics collects the service's domain counters and exposes them for
// Prometheus scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what usecases record against.
type Recorder interface {
	OTPIssued()
	OTPVerified(outcome string)
	RegistrationSubmitted()
	MailSendFailed(purpose string)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	otpIssued       prometheus.Counter
	otpVerified     *prometheus.CounterVec
	submitted       prometheus.Counter
	mailSendFailure *prometheus.CounterVec
}

// NewCollector creates the counters and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		otpIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "otp_issued_total",
			Help: "OTP codes derived and handed to the mail relay.",
		}),
		otpVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "otp_verified_total",
			Help: "OTP verification attempts by outcome.",
		}, []string{"outcome"}),
		submitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "registration_submitted_total",
			Help: "Registrations forwarded to the operator mailbox.",
		}),
		mailSendFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mail_send_failures_total",
			Help: "Mail relay failures by purpose.",
		}, []string{"purpose"}),
	}

	reg.MustRegister(c.otpIssued, c.otpVerified, c.submitted, c.mailSendFailure)

	return c
}

// OTPIssued counts one issued code.
func (c *Collector) OTPIssued() {
	c.otpIssued.Inc()
}

// OTPVerified counts one verification with the given outcome label.
func (c *Collector) OTPVerified(outcome string) {
	c.otpVerified.WithLabelValues(outcome).Inc()
}

// RegistrationSubmitted counts one forwarded registration.
func (c *Collector) RegistrationSubmitted() {
	c.submitted.Inc()
}

// MailSendFailed counts one relay failure for purpose ("otp" or "registration").
func (c *Collector) MailSendFailed(purpose string) {
	c.mailSendFailure.WithLabelValues(purpose).Inc()
}

// Handler serves the exposition format for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop discards every observation.
type Noop struct{}

func (Noop) OTPIssued()             {}
func (Noop) OTPVerified(string)     {}
func (Noop) RegistrationSubmitted() {}
func (Noop) MailSendFailed(string)  {}
