package http

import "github.com/gin-gonic/gin"

// Register mounts every REST route on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/metrics/json", h.MetricsSummary)
	r.POST("/logs", h.StreamLogs)

	// Catalogue
	r.GET("/apps", h.ListApps)
	r.GET("/apps/:appId", h.GetApp)

	// Preferences
	r.GET("/preferences/theme", h.GetTheme)
	r.PUT("/preferences/theme", h.SetTheme)
	r.POST("/preferences/theme/toggle", h.ToggleTheme)
	r.GET("/preferences/scratchpad", h.GetScratchpad)
	r.PUT("/preferences/scratchpad", h.SetScratchpad)

	// Desktop sessions
	r.POST("/desktops", h.CreateDesktop)
	r.GET("/desktops", h.ListDesktops)

	d := r.Group("/desktops/:id")
	d.GET("", h.GetDesktop)
	d.DELETE("", h.DeleteDesktop)
	d.POST("/reset", h.ResetDesktop)
	d.PUT("/viewport", h.SetViewport)

	// Windows
	d.POST("/windows/:appId/open", h.OpenWindow)
	d.POST("/windows/:appId/focus", h.FocusWindow)
	d.POST("/windows/:appId/minimize", h.MinimizeWindow)
	d.POST("/windows/:appId/fullscreen", h.ToggleFullscreen)
	d.POST("/windows/:appId/drag", h.DragWindow)
	d.POST("/windows/:appId/resize", h.ResizeWindow)
	d.DELETE("/windows/:appId", h.CloseWindow)

	// Dock, menu bar, keyboard
	d.POST("/dock/:appId/click", h.ClickDock)
	d.POST("/dock/:appId/hover", h.HoverDock)
	d.DELETE("/dock/hover", h.UnhoverDock)
	d.POST("/menus/:menu/toggle", h.ToggleMenu)
	d.POST("/menus/:menu/items/:item", h.ActivateMenuItem)
	d.DELETE("/menus", h.CloseMenus)
	d.POST("/keys", h.HandleKey)

	// Overlays
	d.POST("/spotlight", h.OpenSpotlight)
	d.PUT("/spotlight/query", h.SetSpotlightQuery)
	d.POST("/spotlight/activate", h.ActivateSpotlight)
	d.DELETE("/spotlight", h.CloseSpotlight)
	d.POST("/preview", h.OpenPreview)
	d.POST("/preview/next", h.NextPreview)
	d.POST("/preview/prev", h.PrevPreview)
	d.DELETE("/preview", h.ClosePreview)

	// Terminal
	d.POST("/terminal", h.ExecTerminal)
}
