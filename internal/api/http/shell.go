package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadishiv23/aadios/internal/domain/shell"
	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// ClickDock activates a dock icon
func (h *Handlers) ClickDock(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	id, ok := appID(c)
	if !ok {
		return
	}
	outcome(c, ws, ws.Dock.Click(id))
}

// HoverDock magnifies a dock icon
func (h *Handlers) HoverDock(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	id, ok := appID(c)
	if !ok {
		return
	}
	ws.Dock.Hover(id)
	c.JSON(http.StatusOK, ws.Dock.View(ws.Windows.Snapshot()))
}

// UnhoverDock clears the dock hover state
func (h *Handlers) UnhoverDock(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	ws.Dock.Unhover()
	c.JSON(http.StatusOK, ws.Dock.View(ws.Windows.Snapshot()))
}

// ToggleMenu opens or closes a menu bar menu
func (h *Handlers) ToggleMenu(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	if err := ws.Menus.Toggle(shell.Menu(c.Param("menu"))); err != nil {
		menuError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws.Menus.View(ws.Windows.Snapshot()))
}

// ActivateMenuItem runs a menu item
func (h *Handlers) ActivateMenuItem(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	out, err := ws.Menus.Activate(shell.Menu(c.Param("menu")), c.Param("item"))
	if err != nil {
		menuError(c, err)
		return
	}
	outcome(c, ws, out)
}

// CloseMenus closes every menu
func (h *Handlers) CloseMenus(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}
	closed := ws.Menus.CloseAll()
	c.JSON(http.StatusOK, gin.H{"closed": closed})
}

// HandleKey applies a global keyboard shortcut
func (h *Handlers) HandleKey(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}

	var ev shell.KeyEvent
	if !bind(c, &ev) {
		return
	}
	if err := utils.ValidateString(ev.Key, "key", 1, 32, true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action := ws.HandleKey(ev)
	c.JSON(http.StatusOK, gin.H{
		"action": action,
		"view":   ws.View(),
	})
}

func menuError(c *gin.Context, err error) {
	if errors.Is(err, shell.ErrUnknownMenu) || errors.Is(err, shell.ErrUnknownMenuItem) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
