package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadishiv23/aadios/internal/domain/session"
	"github.com/aadishiv23/aadios/internal/shared/types"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// DragRequest moves a window by a pointer delta
type DragRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// ResizeRequest grows or shrinks a window by a pointer delta
type ResizeRequest struct {
	DW float64 `json:"dw"`
	DH float64 `json:"dh"`
}

// windowOp adapts a single-app controller operation to a handler.
// Unknown app ids reach the controller and come back as no-ops.
func (h *Handlers) windowOp(op func(ws *session.Workspace, appID string) types.Outcome) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, ok := h.desktop(c)
		if !ok {
			return
		}
		id, ok := appID(c)
		if !ok {
			return
		}
		outcome(c, ws, op(ws, id))
	}
}

// OpenWindow opens or focuses an app
func (h *Handlers) OpenWindow(c *gin.Context) {
	h.windowOp(func(ws *session.Workspace, id string) types.Outcome {
		return ws.Windows.Open(id)
	})(c)
}

// FocusWindow brings an open window to the front
func (h *Handlers) FocusWindow(c *gin.Context) {
	h.windowOp(func(ws *session.Workspace, id string) types.Outcome {
		return ws.Windows.Focus(id)
	})(c)
}

// CloseWindow closes a window
func (h *Handlers) CloseWindow(c *gin.Context) {
	h.windowOp(func(ws *session.Workspace, id string) types.Outcome {
		return ws.Windows.Close(id)
	})(c)
}

// MinimizeWindow hides a window to the dock
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	h.windowOp(func(ws *session.Workspace, id string) types.Outcome {
		return ws.Windows.Minimize(id)
	})(c)
}

// ToggleFullscreen enters or leaves fullscreen
func (h *Handlers) ToggleFullscreen(c *gin.Context) {
	h.windowOp(func(ws *session.Workspace, id string) types.Outcome {
		return ws.Windows.ToggleFullscreen(id)
	})(c)
}

// DragWindow applies a drag delta
func (h *Handlers) DragWindow(c *gin.Context) {
	var req DragRequest
	h.deltaOp(c, &req, func() (float64, float64) { return req.DX, req.DY },
		func(ws *session.Workspace, id string) types.Outcome {
			return ws.Windows.Drag(id, req.DX, req.DY)
		})
}

// ResizeWindow applies a resize delta
func (h *Handlers) ResizeWindow(c *gin.Context) {
	var req ResizeRequest
	h.deltaOp(c, &req, func() (float64, float64) { return req.DW, req.DH },
		func(ws *session.Workspace, id string) types.Outcome {
			return ws.Windows.Resize(id, req.DW, req.DH)
		})
}

func (h *Handlers) deltaOp(c *gin.Context, req interface{}, delta func() (float64, float64), op func(*session.Workspace, string) types.Outcome) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	id, ok := appID(c)
	if !ok {
		return
	}
	if !bind(c, req) {
		return
	}
	if err := utils.ValidateDelta(delta()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	outcome(c, ws, op(ws, id))
}
