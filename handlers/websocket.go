package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"finaura/api/logger"
	"finaura/api/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	readTimeout    = 60 * time.Second
	maxMessageSize = 64 << 10
)

func newUpgrader(allowedOrigin string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(allowedOrigin),
	}
}

// checkOrigin accepts any origin for "*" and otherwise only the configured one.
// Requests without an Origin header come from non-browser clients and are accepted.
func checkOrigin(allowedOrigin string) func(*http.Request) bool {
	if allowedOrigin == "" || allowedOrigin == "*" {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || strings.EqualFold(origin, allowedOrigin)
	}
}

type socketError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HandleChatWebSocket answers every {"message": ...} frame with a classified reply.
// A failed frame gets an error frame; the connection stays open.
func (h *Handler) HandleChatWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Get().Warn("failed to upgrade connection",
			zap.String("origin", c.Request.Header.Get("Origin")),
			zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	logger.Get().Info("websocket connection established",
		zap.String("remote_addr", c.Request.RemoteAddr))

	for {
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Get().Warn("websocket read error", zap.Error(err))
			}
			break
		}

		var msg models.ChatMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if err := conn.WriteJSON(socketError{Error: "invalid message: " + err.Error()}); err != nil {
				break
			}
			continue
		}
		if strings.TrimSpace(msg.Message) == "" {
			if err := conn.WriteJSON(socketError{Error: "message must not be blank"}); err != nil {
				break
			}
			continue
		}

		reply, err := h.reply(c, msg.Message)
		if err != nil {
			status, code := errorStatus(err)
			logger.Get().Error("error classifying websocket message",
				zap.Int("status", status),
				zap.Error(err))
			if err := conn.WriteJSON(socketError{Error: err.Error(), Code: code}); err != nil {
				break
			}
			continue
		}

		if err := conn.WriteJSON(reply); err != nil {
			logger.Get().Warn("failed to write websocket reply", zap.Error(err))
			break
		}
	}

	logger.Get().Info("websocket connection closed",
		zap.String("remote_addr", c.Request.RemoteAddr))
}
