package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UILogEntry represents a log entry from the browser
type UILogEntry struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message" binding:"required,max=2048"`
	Context   map[string]interface{} `json:"context"`
	Timestamp string                 `json:"timestamp"`
}

// UILogStreamRequest represents a batch of logs from the browser
type UILogStreamRequest struct {
	DesktopID string       `json:"desktop_id"`
	Entries   []UILogEntry `json:"entries" binding:"required,min=1,max=100,dive"`
}

// StreamLogs forwards browser logs into the service log
func (h *Handlers) StreamLogs(c *gin.Context) {
	var req UILogStreamRequest
	if !bind(c, &req) {
		return
	}

	logger := h.log.With(zap.String("source", "ui"))
	if req.DesktopID != "" {
		logger = logger.With(zap.String("desktop_id", req.DesktopID))
	}
	for _, entry := range req.Entries {
		logUIEntry(logger, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"entries_received": len(req.Entries),
		"timestamp":        time.Now().Unix(),
	})
}

func logUIEntry(logger *zap.Logger, entry UILogEntry) {
	fields := make([]zap.Field, 0, len(entry.Context)+1)
	fields = append(fields, zap.String("ui_timestamp", entry.Timestamp))
	for key, value := range entry.Context {
		switch v := value.(type) {
		case string:
			fields = append(fields, zap.String(key, v))
		case float64:
			fields = append(fields, zap.Float64(key, v))
		case bool:
			fields = append(fields, zap.Bool(key, v))
		default:
			fields = append(fields, zap.Any(key, v))
		}
	}

	switch entry.Level {
	case "error":
		logger.Error(entry.Message, fields...)
	case "warn":
		logger.Warn(entry.Message, fields...)
	case "debug", "verbose":
		logger.Debug(entry.Message, fields...)
	default:
		logger.Info(entry.Message, fields...)
	}
}
