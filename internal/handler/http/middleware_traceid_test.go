package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTraceHandler returns a Handler whose logger writes into buf.
func newTraceHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantGenerated bool
	}{
		{name: "reuses incoming id", incoming: "dashboard-req-42", wantSame: true},
		{name: "reuses incoming uuid", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "generates id when header is absent", wantGenerated: true},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxTraceIDLength+1), wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTraceHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusTeapot, rr.Code)

			traceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, traceID)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, traceID)
			}
			if tt.wantGenerated {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			}

			assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
		})
	}
}

func TestWithTraceID_UniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

func TestWithTraceID_DoesNotMutateOriginalRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	originalCtx := req.Context()

	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
