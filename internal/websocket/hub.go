package websocket

import (
	"context"
	"sync"

	"harvestguard-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisChannel carries serious-risk events between instances so every
// connected dashboard gets the push regardless of which instance raised it.
const redisChannel = "harvestguard:risk-alerts"

type Hub struct {
	// Registered clients map: ConnectionID -> Client
	clients map[uuid.UUID]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Payloads to fan out to every connected client.
	broadcast chan []byte

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"connection_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"connection_id": client.ID})
			}
			h.mu.Unlock()

		case payload := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.Send <- payload:
				default:
					// Slow consumer; drop the payload rather than block the hub.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast fans a payload out to every connected client. With Redis
// configured the payload goes through pub/sub so other instances deliver it
// too; otherwise it stays local.
func (h *Hub) Broadcast(payload []byte) {
	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), redisChannel, payload).Err(); err == nil {
			return
		}
		h.logger.Warn("Hub", "Redis publish failed, falling back to local broadcast", nil)
	}
	h.broadcast <- payload
}

func (h *Hub) subscribeToRedis() {
	sub := h.rdb.Subscribe(context.Background(), redisChannel)
	for msg := range sub.Channel() {
		h.broadcast <- []byte(msg.Payload)
	}
}
