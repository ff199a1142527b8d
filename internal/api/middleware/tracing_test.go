package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	mw "github.com/donaldgifford/localflipper/internal/api/middleware"
)

func newRecordedProvider(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return tp, sr
}

func attrValue(attrs []attribute.KeyValue, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing_ServerSpan(t *testing.T) {
	t.Parallel()

	tp, sr := newRecordedProvider(t)

	var sawSpan bool
	e := echo.New()
	e.Use(mw.Tracing(tp))
	e.GET("/api/v1/searches/:id", func(c echo.Context) error {
		sawSpan = trace.SpanContextFromContext(c.Request().Context()).IsValid()
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/searches/s1", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, sawSpan, "handler context should carry the span")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "GET /api/v1/searches/:id", span.Name())
	assert.Equal(t, trace.SpanKindServer, span.SpanKind())

	route, ok := attrValue(span.Attributes(), "http.route")
	require.True(t, ok)
	assert.Equal(t, "/api/v1/searches/:id", route.AsString())

	status, ok := attrValue(span.Attributes(), "http.response.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusOK), status.AsInt64())
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestTracing_ServerErrorMarksSpan(t *testing.T) {
	t.Parallel()

	tp, sr := newRecordedProvider(t)

	e := echo.New()
	e.Use(mw.Tracing(tp))
	e.POST("/api/v1/run", func(c echo.Context) error {
		return c.NoContent(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/run", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestTracing_SkipsProbes(t *testing.T) {
	t.Parallel()

	tp, sr := newRecordedProvider(t)

	e := echo.New()
	e.Use(mw.Tracing(tp))
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Empty(t, sr.Ended())
}
