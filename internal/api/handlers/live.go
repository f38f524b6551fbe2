package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/shubham56-h/Trackify/internal/api/middleware"
	"github.com/shubham56-h/Trackify/internal/live"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveHandler streams the caller's workout events over a websocket.
// Browsers cannot set headers on the upgrade request, so the token comes
// from the query string.
type LiveHandler struct {
	hub       *live.Hub
	validator middleware.TokenValidator
}

func NewLiveHandler(hub *live.Hub, validator middleware.TokenValidator) *LiveHandler {
	return &LiveHandler{
		hub:       hub,
		validator: validator,
	}
}

func (h *LiveHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, "Token required")
		return
	}

	userID, err := h.validator.UserIDFromToken(token)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("[handlers.Live] websocket upgrade failed: %v", err)
		return
	}

	client := live.NewClient(h.hub, conn, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
