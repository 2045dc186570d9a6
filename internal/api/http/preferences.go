package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ThemeRequest sets the appearance
type ThemeRequest struct {
	DarkMode *bool `json:"dark_mode" binding:"required"`
}

// ScratchpadRequest replaces the Notes text
type ScratchpadRequest struct {
	Text string `json:"text"`
}

// GetTheme returns the appearance preference
func (h *Handlers) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, h.prefs.Theme())
}

// SetTheme sets the appearance preference
func (h *Handlers) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if !bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.prefs.SetDarkMode(*req.DarkMode))
}

// ToggleTheme flips the appearance preference
func (h *Handlers) ToggleTheme(c *gin.Context) {
	h.prefs.ToggleDarkMode()
	c.JSON(http.StatusOK, h.prefs.Theme())
}

// GetScratchpad returns the Notes text
func (h *Handlers) GetScratchpad(c *gin.Context) {
	c.JSON(http.StatusOK, h.prefs.Scratchpad())
}

// SetScratchpad replaces the Notes text
func (h *Handlers) SetScratchpad(c *gin.Context) {
	var req ScratchpadRequest
	if !bind(c, &req) {
		return
	}

	pad, err := h.prefs.SetScratchpad(req.Text)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pad)
}
