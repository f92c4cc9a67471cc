package handler

import (
	"net/http"

	"healthnet-api/internal/infrastructure/ws"

	"github.com/sirupsen/logrus"
)

type WSHandler struct {
	hub *ws.Hub
	log *logrus.Logger
}

func NewWSHandler(hub *ws.Hub, log *logrus.Logger) *WSHandler {
	return &WSHandler{
		hub: hub,
		log: log,
	}
}

// Connect upgrades the request to a websocket connection attached to the
// broadcast hub. Chat messages and booking events are pushed here.
func (h *WSHandler) Connect(w http.ResponseWriter, r *http.Request) {
	if err := ws.ServeWS(h.hub, w, r); err != nil {
		// Upgrade failures already wrote an HTTP error to the client.
		h.log.Warnf("Websocket upgrade failed: %+v", err)
	}
}
