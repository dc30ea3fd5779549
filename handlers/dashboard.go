package handlers

import (
	"net/http"

	"finaura/api/engine"

	"github.com/gin-gonic/gin"
)

func (h *Handler) HandleDashboard(c *gin.Context) {
	snap, err := h.profiles.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, "error loading profile snapshot", err)
		return
	}

	dashboard, err := engine.BuildDashboard(snap)
	if err != nil {
		respondError(c, "error building dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
