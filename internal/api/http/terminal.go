package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadishiv23/aadios/internal/shared/utils"
)

// TerminalRequest is one line typed at the prompt
type TerminalRequest struct {
	Command string `json:"command" binding:"required"`
}

// ExecTerminal runs a terminal command
func (h *Handlers) ExecTerminal(c *gin.Context) {
	ws, ok := h.desktop(c)
	if !ok {
		return
	}

	var req TerminalRequest
	if !bind(c, &req) {
		return
	}
	if err := utils.ValidateCommand(req.Command); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := ws.Exec(req.Command)
	c.JSON(http.StatusOK, gin.H{
		"result":  res,
		"history": ws.Terminal.History(),
		"desktop": ws.Windows.Snapshot(),
	})
}
