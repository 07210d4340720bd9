package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a request whose context logger writes into buf, the
// way withTraceID prepares it.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		body     string
		contains []string
	}{
		{
			name:   "list locations",
			method: http.MethodGet,
			path:   "/api/locations/?state=TX",
			status: http.StatusOK,
			body:   `{"success":true}`,
			contains: []string{
				`"method":"GET"`,
				`"uri":"/api/locations/?state=TX"`,
				`"status":200`,
				`"size":16`,
				`"duration":`,
				`"level":"info"`,
			},
		},
		{
			name:     "created",
			method:   http.MethodPost,
			path:     "/api/locations/",
			status:   http.StatusCreated,
			body:     "{}",
			contains: []string{`"method":"POST"`, `"status":201`},
		},
		{
			name:     "empty unauthorized",
			method:   http.MethodDelete,
			path:     "/api/locations/loc-1",
			status:   http.StatusUnauthorized,
			contains: []string{`"status":401`, `"size":0`, `"level":"warn"`},
		},
		{
			name:     "server error",
			method:   http.MethodGet,
			path:     "/api/locations/",
			status:   http.StatusInternalServerError,
			body:     `{"success":false,"error":"Internal Server Error"}`,
			contains: []string{`"status":500`, `"level":"error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("a", 1024)))
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":1024`)
}

func TestWithLogging_NothingWritten(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodHead, "/health", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":0`)
}

func TestWithLogging_DoesNotRecoverPanics(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))
	})
}
