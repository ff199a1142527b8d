package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

// logRig runs requests through RequestLog and captures the text output.
type logRig struct {
	t    *testing.T
	e    *echo.Echo
	buf  *bytes.Buffer
	next echo.HandlerFunc
}

func newLogRig(t *testing.T, h echo.HandlerFunc) *logRig {
	t.Helper()
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))
	return &logRig{t: t, e: echo.New(), buf: buf, next: RequestLog(log)(h)}
}

// serve sends one request and returns the log text it produced.
func (r *logRig) serve(req *http.Request) (string, *httptest.ResponseRecorder, echo.Context) {
	r.t.Helper()
	before := r.buf.Len()
	rec := httptest.NewRecorder()
	c := r.e.NewContext(req, rec)
	_ = r.next(c)
	return r.buf.String()[before:], rec, c
}

func (r *logRig) get(path string) string {
	out, _, _ := r.serve(httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return out
}

func status(code int) echo.HandlerFunc {
	return func(c echo.Context) error { return c.NoContent(code) }
}

func TestRequestLog_Fields(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		method  string
		path    string
		handler echo.HandlerFunc
		reqID   string
		want    []string
	}{
		"successful list at info": {
			method:  http.MethodGet,
			path:    "/api/v1/deals",
			handler: status(http.StatusOK),
			want:    []string{"level=INFO", "method=GET", "path=/api/v1/deals", "status=200", "duration_ms=", "request_id="},
		},
		"created search": {
			method:  http.MethodPost,
			path:    "/api/v1/searches",
			handler: status(http.StatusCreated),
			want:    []string{"method=POST", "status=201"},
		},
		"validation failure at warn": {
			method:  http.MethodPost,
			path:    "/api/v1/evaluate",
			handler: status(http.StatusUnprocessableEntity),
			want:    []string{"level=WARN", "status=422"},
		},
		"run failure at error": {
			method:  http.MethodPost,
			path:    "/api/v1/run",
			handler: status(http.StatusInternalServerError),
			want:    []string{"level=ERROR", "status=500"},
		},
		"returned echo error uses its code": {
			method: http.MethodGet,
			path:   "/api/v1/searches/s-missing",
			handler: func(echo.Context) error {
				return echo.NewHTTPError(http.StatusNotFound, "search not found")
			},
			want: []string{"level=WARN", "status=404"},
		},
		"caller request id is kept": {
			method:  http.MethodGet,
			path:    "/api/v1/quota",
			handler: status(http.StatusOK),
			reqID:   "redding-7f3a",
			want:    []string{"request_id=redding-7f3a"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rig := newLogRig(t, tt.handler)
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.reqID != "" {
				req.Header.Set(requestIDHeader, tt.reqID)
			}

			out, rec, c := rig.serve(req)
			for _, field := range tt.want {
				assert.Contains(t, out, field)
			}

			id := rec.Header().Get(requestIDHeader)
			require.NotEmpty(t, id)
			assert.Equal(t, id, c.Get(requestIDKey))
			if tt.reqID != "" {
				assert.Equal(t, tt.reqID, id)
			}
		})
	}
}

func TestRequestLog_TraceID(t *testing.T) {
	t.Parallel()

	tid, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	require.NoError(t, err)
	sid, err := trace.SpanIDFromHex("b7ad6b7169203331")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: tid, SpanID: sid, TraceFlags: trace.FlagsSampled})

	rig := newLogRig(t, status(http.StatusOK))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/deals", http.NoBody).
		WithContext(trace.ContextWithSpanContext(context.Background(), sc))

	out, _, _ := rig.serve(req)
	assert.Contains(t, out, "trace_id=0af7651916cd43dd8448eb211c80319c")
}

func TestRequestLog_ProbeSuppression(t *testing.T) {
	t.Parallel()

	type step struct {
		path   string
		code   int
		logged bool
	}

	tests := map[string][]step{
		"healthz logs only the first success": {
			{"/healthz", http.StatusOK, true},
			{"/healthz", http.StatusOK, false},
			{"/healthz", http.StatusOK, false},
		},
		"readyz failures always log": {
			{"/readyz", http.StatusServiceUnavailable, true},
			{"/readyz", http.StatusServiceUnavailable, true},
		},
		"readyz recovery logs again": {
			{"/readyz", http.StatusOK, true},
			{"/readyz", http.StatusOK, false},
			{"/readyz", http.StatusServiceUnavailable, true},
			{"/readyz", http.StatusOK, true},
			{"/readyz", http.StatusOK, false},
		},
		"probes are tracked per path": {
			{"/healthz", http.StatusOK, true},
			{"/readyz", http.StatusOK, true},
			{"/healthz", http.StatusOK, false},
		},
		"api paths are never suppressed": {
			{"/api/v1/deals", http.StatusOK, true},
			{"/api/v1/deals", http.StatusOK, true},
		},
	}

	for name, steps := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			i := 0
			rig := newLogRig(t, func(c echo.Context) error {
				return c.NoContent(steps[i].code)
			})

			for ; i < len(steps); i++ {
				out := rig.get(steps[i].path)
				if steps[i].logged {
					assert.Contains(t, out, "path="+steps[i].path, "step %d", i)
				} else {
					assert.Empty(t, out, "step %d", i)
				}
			}
		})
	}
}

func TestRequestLog_ProbeFailureIsWarn(t *testing.T) {
	t.Parallel()

	rig := newLogRig(t, status(http.StatusServiceUnavailable))
	out := rig.get("/readyz")

	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=503")
}
