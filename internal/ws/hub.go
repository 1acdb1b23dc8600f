// Package ws implements the WebSocket hub that streams clock and shift
// events to live dashboard clients.
package ws

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zer0x25/reloj-control/internal/metrics"
)

// Hub channel buffer sizes.
const (
	broadcastBuffer = 256
	registerBuffer  = 64
)

// maxClients caps concurrent dashboard connections.
const maxClients = 100

// Hub manages active WebSocket clients and broadcasts events to all of
// them. All client map mutations happen exclusively in the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	count      atomic.Int64
	seq        atomic.Uint64
	log        *logrus.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, registerBuffer),
		unregister: make(chan *Client, registerBuffer),
		broadcast:  make(chan []byte, broadcastBuffer),
		log:        log,
	}
}

// Run starts the hub event loop. It should be run as a goroutine and exits
// when the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.closeSend()
				delete(h.clients, client)
			}
			h.count.Store(0)
			metrics.WSConnections.Set(0)

			return

		case client := <-h.register:
			if len(h.clients) >= maxClients {
				h.log.Warn("connection limit reached, dropping client")
				client.closeSend()
				continue
			}
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			metrics.WSConnections.Set(float64(len(h.clients)))
			h.log.WithField("total", len(h.clients)).Info("ws client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
			}
			h.count.Store(int64(len(h.clients)))
			metrics.WSConnections.Set(float64(len(h.clients)))
			h.log.WithField("total", len(h.clients)).Info("ws client unregistered")

		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow consumer: drop the connection rather than block
					// the hub loop.
					client.closeSend()
					delete(h.clients, client)
				}
			}
			h.count.Store(int64(len(h.clients)))
		}
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	default:
		h.log.Warn("register channel full, dropping client")
		c.closeSend()
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	default:
		// Run loop already exited; cleanup happened on shutdown.
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Publish marshals a typed event and broadcasts it to every client. It
// never blocks: a full broadcast channel drops the event with a warning.
// Satisfies service.Publisher.
func (h *Hub) Publish(eventType string, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		h.log.WithError(err).Error("marshaling event payload")

		return
	}

	msg, err := json.Marshal(Event{
		Type: eventType,
		ID:   h.seq.Add(1),
		Data: payload,
		Time: time.Now(),
	})
	if err != nil {
		h.log.WithError(err).Error("marshaling event")

		return
	}

	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("broadcast channel full, dropping event")
	}
}
