package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadishiv23/aadios/internal/shared/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWindowAndSessionMetrics(t *testing.T) {
	m := NewMetrics()

	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.AddOpenWindows(3)
	m.AddOpenWindows(-1)
	m.ObserveWindowOp(types.OpOpen, true)
	m.ObserveWindowOp(types.OpOpen, false)
	m.ObserveWindowOp(types.OpOpen, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OpenWindows))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WindowOps.WithLabelValues("open", "applied")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.WindowOps.WithLabelValues("open", "ignored")))

	s := m.Summary()
	assert.Equal(t, int64(1), s.ActiveSessions)
	assert.Equal(t, int64(2), s.OpenWindows)
}

func TestPreferenceAndWSMetrics(t *testing.T) {
	m := NewMetrics()

	m.PreferenceWriteFailed("darkMode")
	m.SetBreakerState("preferences", 2)
	m.IncWSConnections()
	m.RecordWSMessage("in", "open")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PrefWriteFailures.WithLabelValues("darkMode")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BreakerState.WithLabelValues("preferences")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSMessages.WithLabelValues("in", "open")))
	assert.Equal(t, int64(1), m.Summary().WSConnections)

	m.DecWSConnections()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.WSConnections))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := NewMetrics()

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/apps/:appId", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for _, path := range []string{"/apps/notes", "/apps/terminal", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/apps/:appId", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	s := m.Summary()
	assert.Equal(t, int64(3), s.TotalRequests)
	assert.InDelta(t, 1.0/3.0, s.ErrorRate, 1e-9)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "aadios_http_requests_total")
	assert.Contains(t, w.Body.String(), "aadios_uptime_seconds")
}

func TestSeparateRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()
	a.SessionOpened()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SessionsActive))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SessionsActive))
}
