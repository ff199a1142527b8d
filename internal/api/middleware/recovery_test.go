package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/localflipper/pkg/logger"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		method    string
		path      string
		requestID string
		handler   echo.HandlerFunc
		wantCode  int
		wantBody  string
		wantLog   []string
		quiet     bool
	}{
		{
			name:     "no panic passes through",
			method:   http.MethodGet,
			path:     "/api/v1/deals",
			handler:  func(c echo.Context) error { return c.String(http.StatusOK, "ok") },
			wantCode: http.StatusOK,
			wantBody: "ok",
			quiet:    true,
		},
		{
			name:      "string panic",
			method:    http.MethodPost,
			path:      "/api/v1/evaluate",
			requestID: "req-7",
			handler:   func(echo.Context) error { panic("nil comparables") },
			wantCode:  http.StatusInternalServerError,
			wantBody:  `"detail":"internal server error"`,
			wantLog:   []string{"panic recovered", "nil comparables", "path=/api/v1/evaluate", "request_id=req-7", "stack="},
		},
		{
			name:     "non-string panic",
			method:   http.MethodPost,
			path:     "/api/v1/searches/abc/run",
			handler:  func(echo.Context) error { panic(42) },
			wantCode: http.StatusInternalServerError,
			wantBody: `"status":500`,
			wantLog:  []string{"error=42", "method=POST"},
		},
		{
			name:   "panic after headers are written",
			method: http.MethodGet,
			path:   "/api/v1/deals",
			handler: func(c echo.Context) error {
				c.Response().WriteHeader(http.StatusOK)
				panic("writer closed")
			},
			wantCode: http.StatusOK,
			wantLog:  []string{"writer closed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(tt.method, tt.path, http.NoBody), rec)
			if tt.requestID != "" {
				c.Set(requestIDKey, tt.requestID)
			}

			err := Recovery(logger.NewWithWriter(&buf, "info", logger.FormatText))(tt.handler)(c)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			} else {
				assert.NotContains(t, rec.Body.String(), "internal server error")
			}
			if tt.quiet {
				assert.Zero(t, buf.Len())
			}
			for _, w := range tt.wantLog {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestRecovery_AbortHandlerPropagates(t *testing.T) {
	t.Parallel()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())
	h := Recovery(logger.Discard())(func(echo.Context) error { panic(http.ErrAbortHandler) })

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = h(c) })
}
