package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/entityreg/internal/pkg/config"
	"github.com/shandysiswandi/entityreg/internal/pkg/goerror"
	"github.com/shandysiswandi/entityreg/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type messageOnly struct{}

func (messageOnly) Message() string { return "done" }
func (messageOnly) Data() any       { return nil }

func newTestRouter(t *testing.T, cfg config.Config, ready *atomic.Bool) *Router {
	t.Helper()
	return NewRouter(Config{Config: cfg, UUID: fixedID("cid-test"), Ready: ready})
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_SuccessEnvelope(t *testing.T) {
	r := newTestRouter(t, nil, nil)
	r.POST("/ok", func(*Request) (any, error) { return messageOnly{}, nil })
	r.GET("/data", func(*Request) (any, error) { return map[string]int{"n": 1}, nil })

	rec := serve(r, http.MethodPost, "/ok", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"done"}`, rec.Body.String())
	assert.Equal(t, "cid-test", rec.Header().Get(HeaderCorrelationID))

	rec = serve(r, http.MethodGet, "/data", "")
	assert.JSONEq(t, `{"message":"request has been successfully","data":{"n":1}}`, rec.Body.String())
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "invalid format",
			err:  goerror.NewInvalidFormat(),
			code: http.StatusBadRequest,
			body: `{"message":"Invalid request body"}`,
		},
		{
			name: "validator fields",
			err:  goerror.NewInvalidInput(validator.V10ValidationError{"city": "city is a required field"}),
			code: http.StatusBadRequest,
			body: `{"message":"Validation error","error":{"city":"city is a required field"}}`,
		},
		{
			name: "unauthorized",
			err:  goerror.NewBusiness("Invalid or expired OTP. Please try again.", goerror.CodeUnauthorized),
			code: http.StatusUnauthorized,
			body: `{"message":"Invalid or expired OTP. Please try again."}`,
		},
		{
			name: "unavailable",
			err:  goerror.NewUnavailable(errors.New("smtp down"), "Failed to send"),
			code: http.StatusServiceUnavailable,
			body: `{"message":"Failed to send"}`,
		},
		{
			name: "untyped",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
			body: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, nil, nil)
			r.POST("/fail", func(*Request) (any, error) { return nil, tt.err })

			rec := serve(r, http.MethodPost, "/fail", "{}")
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, nil, nil)
	r.POST("/only-post", func(*Request) (any, error) { return messageOnly{}, nil })

	rec := serve(r, http.MethodGet, "/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(r, http.MethodGet, "/only-post", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"message":"Method Not Allowed"}`, rec.Body.String())
}

func TestRouter_Health(t *testing.T) {
	ready := atomic.NewBool(true)
	r := newTestRouter(t, nil, ready)

	rec := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	ready.Store(false)
	rec = serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_RecoversPanics(t *testing.T) {
	r := newTestRouter(t, nil, nil)
	r.POST("/panic", func(*Request) (any, error) { panic("kaboom") })

	rec := serve(r, http.MethodPost, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestRouter_Maintenance(t *testing.T) {
	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  maintenance:\n    endpoints: /down\n"))
	require.NoError(t, err)

	r := newTestRouter(t, cfg, nil)
	r.POST("/down", func(*Request) (any, error) { return messageOnly{}, nil })
	r.POST("/up", func(*Request) (any, error) { return messageOnly{}, nil })

	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodPost, "/down", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/up", "").Code)
}

func TestRouter_GETRaw(t *testing.T) {
	r := newTestRouter(t, nil, nil)
	r.GETRaw("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("plain"))
	}))

	rec := serve(r, http.MethodGet, "/raw", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "plain", rec.Body.String())
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), nil, mw("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"a", "b", "handler"}, order)
}
