package handlers

import (
	"log"
	"net/http"

	"github.com/dom/recipe-share/internal/websocket"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // The feed is public and read-only
	},
}

type FeedHandler struct {
	hub *websocket.Hub
}

func NewFeedHandler(hub *websocket.Hub) *FeedHandler {
	return &FeedHandler{hub: hub}
}

// Handle upgrades the connection and subscribes it to recipe events.
func (h *FeedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
