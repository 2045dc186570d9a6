package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aadishiv23/aadios/internal/domain/session"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// ViewportRequest resizes the desktop area
type ViewportRequest struct {
	Width  float64 `json:"width" binding:"required"`
	Height float64 `json:"height" binding:"required"`
}

// CreateDesktop starts a desktop session
func (h *Handlers) CreateDesktop(c *gin.Context) {
	ws, err := h.sessions.Create()
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("Failed to create desktop", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", "/desktops/"+ws.ID.String())
	c.JSON(http.StatusCreated, ws.View())
}

// ListDesktops lists live sessions
func (h *Handlers) ListDesktops(c *gin.Context) {
	list := h.sessions.List()
	c.JSON(http.StatusOK, gin.H{
		"desktops": list,
		"count":    len(list),
	})
}

// GetDesktop renders a whole session
func (h *Handlers) GetDesktop(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ws.View())
}

// DeleteDesktop closes a session
func (h *Handlers) DeleteDesktop(c *gin.Context) {
	desktopID := c.Param("id")
	if err := h.sessions.Delete(desktopID); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": desktopID})
}

// ResetDesktop returns a session to its fresh-load state
func (h *Handlers) ResetDesktop(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	outcome(c, ws, ws.Reset())
}

// SetViewport records a new desktop size
func (h *Handlers) SetViewport(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}

	var req ViewportRequest
	if !bind(c, &req) {
		return
	}
	if err := utils.ValidateViewport(req.Width, req.Height); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome(c, ws, ws.Windows.SetViewport(req.Width, req.Height))
}
