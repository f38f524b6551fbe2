package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shubham56-h/Trackify/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (s stubValidator) UserIDFromToken(string) (uuid.UUID, error) {
	return s.userID, s.err
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		header      string
		validator   stubValidator
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			validator:  stubValidator{userID: userID},
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing header",
			validator:   stubValidator{userID: userID},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Missing Authorization Header",
		},
		{
			name:        "wrong scheme",
			header:      "Basic abc",
			validator:   stubValidator{userID: userID},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid authorization header",
		},
		{
			name:        "invalid token",
			header:      "Bearer bad",
			validator:   stubValidator{err: errors.New("expired")},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID uuid.UUID
			handler := Auth(tt.validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := GetUserID(r.Context())
				require.True(t, ok)
				gotID = id
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/today", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, gotID)
			} else {
				assert.JSONEq(t, `{"message":"`+tt.wantMessage+`"}`, rec.Body.String())
			}
		})
	}
}

func TestCORSHeaders(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be called for OPTIONS")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestMetrics(t *testing.T) {
	m := metrics.NewTestManager()
	handler := RequestMetrics(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/today/finish", nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues(http.MethodPost, "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GaugeRequests))
}

func TestLogRequest_PassesThrough(t *testing.T) {
	handler := LogRequest()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/splits", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
