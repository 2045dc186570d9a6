package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/domain/preferences"
	"github.com/aadishiv23/aadios/internal/domain/registry"
	"github.com/aadishiv23/aadios/internal/domain/session"
	"github.com/aadishiv23/aadios/internal/infrastructure/monitoring"
	"github.com/aadishiv23/aadios/internal/shared/types"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	sessions *session.Manager
	registry *registry.Registry
	prefs    *preferences.Service
	metrics  *monitoring.Metrics
	log      *zap.Logger
	started  time.Time
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(
	sessions *session.Manager,
	reg *registry.Registry,
	prefs *preferences.Service,
	metrics *monitoring.Metrics,
	log *zap.Logger,
) *Handlers {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handlers{
		sessions: sessions,
		registry: reg,
		prefs:    prefs,
		metrics:  metrics,
		log:      log,
		started:  time.Now(),
	}
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "AadiOS Desktop Service",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"apps":           h.registry.Len(),
		"sessions":       h.sessions.Count(),
		"dark_mode":      h.prefs.DarkMode(),
		"uptime_seconds": time.Since(h.started).Seconds(),
	})
}

// MetricsSummary returns headline metrics as JSON
func (h *Handlers) MetricsSummary(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "metrics disabled"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now(),
		"summary":   h.metrics.Summary(),
	})
}

// desktop resolves the :id session, writing the error response if it cannot
func (h *Handlers) desktop(c *gin.Context) (*session.Workspace, bool) {
	desktopID := c.Param("id")
	if err := utils.ValidateID(desktopID, "desktop_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	ws, err := h.sessions.Get(desktopID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return ws, true
}

// appID validates the :appId parameter
func appID(c *gin.Context) (string, bool) {
	id := c.Param("appId")
	if err := utils.ValidateID(id, "app_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return id, true
}

// bind decodes the JSON body, writing 400 on failure
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// outcome replies with what an operation did and the resulting desktop
func outcome(c *gin.Context, ws *session.Workspace, out types.Outcome) {
	c.JSON(http.StatusOK, gin.H{
		"outcome": out,
		"desktop": ws.Windows.Snapshot(),
	})
}
