package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// ListApps lists the catalogue, optionally filtered by ?category=
func (h *Handlers) ListApps(c *gin.Context) {
	var category *string
	if raw := c.Query("category"); raw != "" {
		if err := utils.ValidateID(raw, "category", false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category = &raw
	}

	apps := h.registry.List(category)
	c.JSON(http.StatusOK, gin.H{
		"apps":  apps,
		"count": len(apps),
		"dock":  h.registry.DockItems(),
	})
}

// GetApp returns one descriptor
func (h *Handlers) GetApp(c *gin.Context) {
	id, ok := appID(c)
	if !ok {
		return
	}

	d, found := h.registry.Resolve(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found: " + id})
		return
	}
	c.JSON(http.StatusOK, d)
}
