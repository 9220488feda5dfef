// Package realtime fans change notifications out to connected clients. The
// stores are the source of truth; the hub only tells clients which collection
// changed so they re-fetch and recompute their views, the same loop the
// original ran on database snapshot listeners.
package realtime

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Collections clients can subscribe to.
const (
	CollectionAreas       = "areas"
	CollectionSubmissions = "submissions"
	CollectionHistory     = "history"
)

// ChangeEvent names the collection whose snapshot is stale.
type ChangeEvent struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
}

type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	upgrader   websocket.Upgrader
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *client),
		unregister: make(chan *client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			logging.Log.Info("WS: client connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				logging.Log.Info("WS: client disconnected")
			}

		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// NotifyChanged tells every subscriber that a collection's snapshot is
// stale. Dropped messages are fine: clients re-fetch the full snapshot on
// every event, so the next one catches them up.
func (h *Hub) NotifyChanged(collection string) {
	event := ChangeEvent{Type: "change", Collection: collection}
	message, err := json.Marshal(event)
	if err != nil {
		logging.Log.Errorf("WS: failed to marshal change event: %v", err)
		return
	}
	h.broadcast <- message
}

func (h *Hub) ServeWS(g *gin.Context) {
	conn, err := h.upgrader.Upgrade(g.Writer, g.Request, nil)
	if err != nil {
		logging.Log.Errorf("WS: upgrade error: %v", err)
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Log.Warnf("WS: read error: %v", err)
			}
			break
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
