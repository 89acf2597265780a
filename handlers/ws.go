package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/cgrworks/quotation-api/config"
)

// WSHandler pushes state-change signals to every open browser tab so lists
// and dashboards refresh without polling. There is one shared workspace,
// so every session gets every signal.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()
	m.Config.MaxMessageSize = 1024 * 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		config.GetLogger().Debug("websocket client disconnected")
	})

	m.HandleError(func(s *melody.Session, err error) {
		config.GetLogger().WithField("module", "ws").Warnf("websocket error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request to a websocket session.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		config.GetLogger().WithField("module", "ws").Warnf("failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate signals a committed state change to all connected
// sessions.
func (h *WSHandler) BroadcastUpdate(updateType, user string) {
	if h == nil || h.M == nil {
		return
	}

	msg, err := json.Marshal(gin.H{"type": updateType, "user": user})
	if err != nil {
		return
	}
	if err := h.M.Broadcast(msg); err != nil {
		config.GetLogger().WithField("module", "ws").Warnf("broadcast failed: %v", err)
	}
}
