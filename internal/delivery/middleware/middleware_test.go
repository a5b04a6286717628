package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "rxconsole/internal/delivery/context"
	"rxconsole/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "reuses client id", header: "abc-123_x.y", keep: true},
		{name: "mints id when absent", header: ""},
		{name: "rejects unsafe characters", header: "abc\r\nX-Evil: 1"},
		{name: "rejects oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/resources", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				fromCtx = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			id := rec.Header().Get(deliverycontext.HeaderXRequestID)
			if tt.keep {
				assert.Equal(t, tt.header, id)
			} else {
				assert.NotEqual(t, tt.header, id)
				assert.Len(t, id, 36)
			}
			assert.Equal(t, id, fromCtx)
			assert.Equal(t, id, deliverycontext.GetRequestID(c))
			assert.Contains(t, logs.String(), `"request_id":"`+id+`"`)
		})
	}
}

func TestMetricsMiddleware_LabelsByRoute(t *testing.T) {
	e := echo.New()
	e.Use(NewMetricsMiddleware().Handle)
	e.GET("/resources/:resource", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/resources/:resource", http.MethodGet, "204"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources/drivers", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/resources/:resource", http.MethodGet, "204")))
}

func TestMetricsMiddleware_RendersErrorsBeforeRecording(t *testing.T) {
	e := echo.New()
	e.Use(NewMetricsMiddleware().Handle)
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/boom", http.MethodGet, "418")))
}
