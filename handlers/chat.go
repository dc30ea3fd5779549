package handlers

import (
	"net/http"
	"strings"

	"finaura/api/logger"
	"finaura/api/middleware"
	"finaura/api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) HandleChat(c *gin.Context) {
	var req models.ChatMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Debug("error binding chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be blank"})
		return
	}

	reply, err := h.reply(c, req.Message)
	if err != nil {
		respondError(c, "error classifying message", err)
		return
	}

	logger.Get().Info("message classified",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("intent", string(reply.Intent)))
	c.JSON(http.StatusOK, reply)
}

// reply loads the current snapshot and runs the classifier against it.
func (h *Handler) reply(c *gin.Context, text string) (models.InterventionResponse, error) {
	snap, err := h.profiles.Snapshot(c.Request.Context())
	if err != nil {
		return models.InterventionResponse{}, err
	}
	return h.engine.Classify(text, snap)
}
