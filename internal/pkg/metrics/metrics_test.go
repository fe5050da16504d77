package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.OTPIssued()
	c.OTPIssued()
	c.OTPVerified("accepted")
	c.OTPVerified("expired")
	c.OTPVerified("expired")
	c.RegistrationSubmitted()
	c.MailSendFailed("otp")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.otpIssued))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.otpVerified.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.otpVerified.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.submitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.mailSendFailure.WithLabelValues("otp")))
}

func TestCollector_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	assert.Panics(t, func() { NewCollector(reg) })
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg).RegistrationSubmitted()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "registration_submitted_total 1")
}

func TestNoop(t *testing.T) {
	var r Recorder = Noop{}
	assert.NotPanics(t, func() {
		r.OTPIssued()
		r.OTPVerified("mismatch")
		r.RegistrationSubmitted()
		r.MailSendFailed("registration")
	})
}
