package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadishiv23/aadios/internal/shared/types"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// QueryRequest sets the spotlight search text
type QueryRequest struct {
	Query string `json:"query"`
}

// ActivateRequest picks a spotlight result
type ActivateRequest struct {
	Index int `json:"index" binding:"min=0"`
}

// PreviewRequest opens the media lightbox
type PreviewRequest struct {
	Assets []types.MediaAsset `json:"assets" binding:"max=64,dive"`
	Index  int                `json:"index"`
}

// OpenSpotlight shows the spotlight overlay
func (h *Handlers) OpenSpotlight(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	ws.OpenSpotlight()
	ws.Menus.CloseAll()
	c.JSON(http.StatusOK, ws.Spotlight.View())
}

// SetSpotlightQuery filters spotlight results
func (h *Handlers) SetSpotlightQuery(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}

	var req QueryRequest
	if !bind(c, &req) {
		return
	}
	if err := utils.ValidateQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.Spotlight.SetQuery(req.Query)
	c.JSON(http.StatusOK, ws.Spotlight.View())
}

// ActivateSpotlight launches a spotlight result
func (h *Handlers) ActivateSpotlight(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}

	var req ActivateRequest
	if !bind(c, &req) {
		return
	}

	out, activated := ws.Spotlight.Activate(req.Index)
	c.JSON(http.StatusOK, gin.H{
		"activated": activated,
		"outcome":   out,
		"desktop":   ws.Windows.Snapshot(),
	})
}

// CloseSpotlight hides the spotlight overlay
func (h *Handlers) CloseSpotlight(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": ws.Spotlight.Close()})
}

// OpenPreview opens the media lightbox
func (h *Handlers) OpenPreview(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}

	var req PreviewRequest
	if !bind(c, &req) {
		return
	}

	ws.OpenPreview(req.Assets, req.Index)
	c.JSON(http.StatusOK, ws.Preview.View())
}

// NextPreview advances the lightbox with wrap-around
func (h *Handlers) NextPreview(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	ws.Preview.Next()
	c.JSON(http.StatusOK, ws.Preview.View())
}

// PrevPreview steps the lightbox back with wrap-around
func (h *Handlers) PrevPreview(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	ws.Preview.Prev()
	c.JSON(http.StatusOK, ws.Preview.View())
}

// ClosePreview closes the lightbox
func (h *Handlers) ClosePreview(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": ws.Preview.Close()})
}
