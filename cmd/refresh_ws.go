package main

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// RefreshEvent tells connected dashboards to reload their property list.
type RefreshEvent struct {
	Event string `json:"event"`
}

type refreshClient struct {
	ID     string
	Socket *websocket.Conn
}

type RefreshHub struct {
	clients    map[string]*websocket.Conn
	broadcast  chan RefreshEvent
	register   chan refreshClient
	unregister chan string
}

func NewRefreshHub() *RefreshHub {
	return &RefreshHub{
		clients:    make(map[string]*websocket.Conn),
		broadcast:  make(chan RefreshEvent),
		register:   make(chan refreshClient),
		unregister: make(chan string),
	}
}

func (h *RefreshHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client.Socket
		case clientID := <-h.unregister:
			if conn, ok := h.clients[clientID]; ok {
				conn.Close()
				delete(h.clients, clientID)
			}
		case msg := <-h.broadcast:
			for id, conn := range h.clients {
				if err := conn.WriteJSON(msg); err != nil {
					conn.Close()
					delete(h.clients, id)
				}
			}
		}
	}
}

func (h *RefreshHub) Broadcast(event string) {
	h.broadcast <- RefreshEvent{Event: event}
}

func (app *application) RefreshSocketHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := refreshClient{ID: uuid.NewString(), Socket: conn}
	app.hub.register <- client

	go app.watchRefreshClient(conn, client.ID)
}

// watchRefreshClient drains the connection until the peer goes away, then
// unregisters it.
func (app *application) watchRefreshClient(conn *websocket.Conn, clientID string) {
	defer func() {
		app.hub.unregister <- clientID
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
