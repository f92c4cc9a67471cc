package ws

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ChatChannel is the redis pub/sub channel connecting API instances.
// Every instance publishes chat events here and relays what it receives
// to its own websocket clients, so a message reaches users regardless of
// which instance holds their connection.
const ChatChannel = "healthnet:chat"

// Hub tracks connected websocket clients and fans events out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	log        *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run owns the client set. It is the only goroutine that touches
// h.clients, so no locking is needed. Returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debugf("Websocket client connected, %d total", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debugf("Websocket client disconnected, %d total", len(h.clients))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer, drop the connection rather than the hub.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastRaw queues a pre-encoded payload for every connected client.
func (h *Hub) BroadcastRaw(message []byte) {
	h.broadcast <- message
}

// RelayFromRedis subscribes to the chat channel and feeds every payload
// into the local broadcast loop. Blocks until ctx is done.
func (h *Hub) RelayFromRedis(ctx context.Context, redisClient *redis.Client) {
	pubsub := redisClient.Subscribe(ctx, ChatChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.BroadcastRaw([]byte(msg.Payload))
		}
	}
}
