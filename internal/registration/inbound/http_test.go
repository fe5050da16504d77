package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/entityreg/internal/pkg/clock"
	"github.com/shandysiswandi/entityreg/internal/pkg/goroutine"
	"github.com/shandysiswandi/entityreg/internal/pkg/instrument"
	"github.com/shandysiswandi/entityreg/internal/pkg/mail"
	"github.com/shandysiswandi/entityreg/internal/pkg/messaging"
	"github.com/shandysiswandi/entityreg/internal/pkg/otp"
	"github.com/shandysiswandi/entityreg/internal/pkg/router"
	"github.com/shandysiswandi/entityreg/internal/pkg/validator"
	"github.com/shandysiswandi/entityreg/internal/registration/outbound/email"
	"github.com/shandysiswandi/entityreg/internal/registration/outbound/mq"
	"github.com/shandysiswandi/entityreg/internal/registration/usecase"
	"github.com/shandysiswandi/entityreg/internal/shared/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type outbox struct {
	mu   sync.Mutex
	err  error
	sent []mail.Message
}

func (o *outbox) Send(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, msg)
	return nil
}

func (*outbox) Close() error { return nil }

func (o *outbox) last() mail.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sent[len(o.sent)-1]
}

type server struct {
	handler http.Handler
	outbox  *outbox
	broker  *messaging.Memory
	tasks   *goroutine.Manager
}

func newServer(t *testing.T, at time.Time) *server {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	ins := instrument.NewNoop()
	s := &server{
		outbox: &outbox{},
		broker: messaging.NewMemory(),
		tasks:  goroutine.NewManager(2),
	}

	r := router.NewRouter(router.Config{UUID: fixedID("cid-1"), Instrument: ins})
	RegisterHTTPEndpoint(r, usecase.New(usecase.Dependency{
		RepoMail:      email.New(s.outbox, ins),
		RepoMessaging: mq.NewMessaging(s.broker, ins),
		Validator:     v,
		OTP:           otp.NewEmailOTP(otp.Config{Secret: []byte("s3cr3t"), Window: 5 * time.Minute, Tolerance: 1}),
		Clock:         clock.NewFixed(at),
		UUID:          fixedID("event-1"),
		Instrument:    ins,
		Goroutine:     s.tasks,
	}))
	s.handler = r

	return s
}

func (s *server) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// extractCode pulls the six digits out of the OTP mail body.
func extractCode(t *testing.T, body string) string {
	t.Helper()

	i := strings.Index(body, "inline-block;\">")
	require.GreaterOrEqual(t, i, 0)
	start := i + len("inline-block;\">")
	return body[start : start+6]
}

func submitBody(code string) string {
	b, _ := json.Marshal(SubmitRequest{
		EntityName:         "Acme Capital",
		Website:            "https://acme.example",
		SEBIRegistrationNo: "INZ000123456",
		Address:            "1 Main Street",
		City:               "Mumbai",
		State:              "Maharashtra",
		Country:            "India",
		ContactPerson:      "Asha Rao",
		Designation:        "Director",
		EmailID:            "user@example.com",
		Mobile:             "+91 98765 43210",
		OTP:                code,
	})
	return string(b)
}

func TestRegistrationFlow(t *testing.T) {
	at := time.Unix(1_700_000_000, 0)
	s := newServer(t, at)

	rec := s.do(http.MethodPost, "/api/v1/registration/otp", `{"email":"user@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OTP sent successfully!"}`, rec.Body.String())

	code := extractCode(t, s.outbox.last().HTMLBody)
	assert.Equal(t, "316581", code)

	rec = s.do(http.MethodPost, "/api/v1/registration/submit", submitBody(code))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Form submitted and email sent successfully!"}`, rec.Body.String())

	msg := s.outbox.last()
	assert.Equal(t, "New Entity Registration: Acme Capital", msg.Subject)

	require.NoError(t, s.tasks.Wait())
	published := s.broker.Messages()
	require.Len(t, published, 1)
	assert.Equal(t, event.RegistrationSubmittedDestination, published[0].Destination)
}

func TestRegistrationFlow_CodeFromPreviousWindow(t *testing.T) {
	issued := newServer(t, time.Unix(1_700_000_000, 0))
	rec := issued.do(http.MethodPost, "/api/v1/registration/otp", `{"email":"user@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	code := extractCode(t, issued.outbox.last().HTMLBody)

	later := newServer(t, time.Unix(1_700_000_000+300, 0))
	rec = later.do(http.MethodPost, "/api/v1/registration/submit", submitBody(code))
	assert.Equal(t, http.StatusOK, rec.Code)

	muchLater := newServer(t, time.Unix(1_700_000_000+600, 0))
	rec = muchLater.do(http.MethodPost, "/api/v1/registration/submit", submitBody(code))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid or expired OTP. Please try again."}`, rec.Body.String())
}

func TestSendOTP_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
		resp string
	}{
		{
			name: "malformed json",
			body: `{"email":`,
			code: http.StatusBadRequest,
			resp: `{"message":"Invalid request body"}`,
		},
		{
			name: "unknown field",
			body: `{"mail":"user@example.com"}`,
			code: http.StatusBadRequest,
			resp: `{"message":"Invalid request body"}`,
		},
		{
			name: "implausible email",
			body: `{"email":"user@host"}`,
			code: http.StatusBadRequest,
			resp: `{"message":"Validation error","error":{"email":"email must be a valid email address"}}`,
		},
		{
			name: "missing email",
			body: `{}`,
			code: http.StatusBadRequest,
			resp: `{"message":"Validation error","error":{"email":"email is a required field"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(t, time.Unix(1_700_000_000, 0))

			rec := s.do(http.MethodPost, "/api/v1/registration/otp", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.resp, rec.Body.String())
			assert.Empty(t, s.outbox.sent)
		})
	}
}

func TestSendOTP_MailFailure(t *testing.T) {
	s := newServer(t, time.Unix(1_700_000_000, 0))
	s.outbox.err = assert.AnError

	rec := s.do(http.MethodPost, "/api/v1/registration/otp", `{"email":"user@example.com"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"Failed to send OTP email. Please try again later."}`, rec.Body.String())
}

func TestSubmit_MissingFields(t *testing.T) {
	s := newServer(t, time.Unix(1_700_000_000, 0))

	rec := s.do(http.MethodPost, "/api/v1/registration/submit", `{"entity_name":"Acme","otp":"316581"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string            `json:"message"`
		Error   map[string]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation error", resp.Message)
	assert.Len(t, resp.Error, 10)
	assert.Equal(t, "sebi_registration_no is a required field", resp.Error["sebi_registration_no"])
	assert.NotContains(t, resp.Error, "entity_name")
}

func TestSubmit_CamelCaseKeysRejected(t *testing.T) {
	s := newServer(t, time.Unix(1_700_000_000, 0))

	body := `{"entityName":"Acme Capital","website":"https://acme.example","sebiRegistrationNo":"INZ000123456",` +
		`"address":"1 Main Street","city":"Mumbai","state":"Maharashtra","country":"India",` +
		`"contactPerson":"Asha Rao","designation":"Director","emailId":"user@example.com",` +
		`"mobile":"+91 98765 43210","otp":"316581"}`

	rec := s.do(http.MethodPost, "/api/v1/registration/submit", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
	assert.Empty(t, s.outbox.sent)
}

func TestEndpoints_MethodNotAllowed(t *testing.T) {
	s := newServer(t, time.Unix(1_700_000_000, 0))

	for _, path := range []string{"/api/v1/registration/otp", "/api/v1/registration/submit"} {
		rec := s.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.JSONEq(t, `{"message":"Method Not Allowed"}`, rec.Body.String())
	}
}
