package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts a zerolog.Logger into the request context the same way
// withTraceID does.
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf).With().Timestamp().Logger()
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		response      string
		wantLog       []string
	}{
		{
			name:          "pull",
			method:        http.MethodGet,
			path:          "/api/sync",
			handlerStatus: http.StatusOK,
			response:      `{"version":1}`,
			wantLog:       []string{`"method":"GET"`, `"uri":"/api/sync"`, `"status":200`, `"size":13`, `"duration":`},
		},
		{
			name:          "conflicting push",
			method:        http.MethodPut,
			path:          "/api/sync",
			handlerStatus: http.StatusConflict,
			response:      `{"code":"VERSION_CONFLICT"}`,
			wantLog:       []string{`"method":"PUT"`, `"status":409`},
		},
		{
			name:          "query string kept",
			method:        http.MethodGet,
			path:          "/api/admin/users?page=2&search=al",
			handlerStatus: http.StatusOK,
			wantLog:       []string{`"uri":"/api/admin/users?page=2&search=al"`},
		},
		{
			name:          "implicit 200 with empty body",
			method:        http.MethodHead,
			path:          "/",
			handlerStatus: 0,
			wantLog:       []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{metrics: metrics.New(), logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.response != "" {
					w.Write([]byte(tt.response))
				}
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), &logBuf)
			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, want := range tt.wantLog {
				assert.Contains(t, logBuf.String(), want)
			}
		})
	}
}

func TestWithLogging_RecordsLatency(t *testing.T) {
	h := &Handler{metrics: metrics.New(), logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/sync", nil))

	rec := httptest.NewRecorder()
	h.metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `timi_http_request_duration_seconds_count{method="PUT",status="409"} 1`)
}
