package handlers

import (
	"errors"
	"net/http"

	"finaura/api/engine"
	"finaura/api/logger"
	"finaura/api/middleware"
	"finaura/api/models"
	"finaura/api/receipt"
	"finaura/api/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handler serves the HTTP surface. Every request reads a fresh snapshot from the
// provider; the handler itself holds no per-user state.
type Handler struct {
	profiles store.Provider
	engine   *engine.Engine
	scanner  receipt.Scanner
	upgrader *websocket.Upgrader
}

func NewHandler(profiles store.Provider, eng *engine.Engine, scanner receipt.Scanner) *Handler {
	if scanner == nil {
		scanner = receipt.Stub{}
	}
	return &Handler{profiles: profiles, engine: eng, scanner: scanner, upgrader: newUpgrader("*")}
}

// NewRouter wires the routes and middleware onto a fresh gin engine. allowedOrigin
// governs both CORS and websocket upgrades.
func NewRouter(h *Handler, allowedOrigin string) *gin.Engine {
	h.upgrader = newUpgrader(allowedOrigin)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID, middleware.RequestLogger, middleware.Cors(allowedOrigin))

	router.GET("/healthz", h.HandleHealth)
	router.GET("/dashboard", h.HandleDashboard)
	router.POST("/chat", h.HandleChat)
	router.GET("/ws/chat", h.HandleChatWebSocket)
	router.POST("/scan-receipt", h.HandleScanReceipt)

	return router
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// errorStatus maps domain errors onto an HTTP status and a stable error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrMissingProfileData):
		return http.StatusServiceUnavailable, "profile_data_unavailable"
	case errors.Is(err, models.ErrInvalidProfileData):
		return http.StatusUnprocessableEntity, "invalid_profile_data"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func respondError(c *gin.Context, msg string, err error) {
	status, code := errorStatus(err)
	logger.Get().Error(msg,
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("code", code),
		zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
