package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/pkg/notify"
)

// Hub maintains the set of connected admin clients and broadcasts
// notifications to all of them.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Outbound notifications, already serialised
	broadcast chan []byte

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Closed once Run returns; pending joins and leaves give up on it
	done     chan struct{}
	stopOnce sync.Once

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Logger for Hub operations
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Run handles client registrations and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			h.stopOnce.Do(func() { close(h.done) })
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case data := <-h.broadcast:
			h.broadcastMessage(data)
		}
	}
}

// join hands client to the running hub. It reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave removes client; after shutdown there is nothing left to remove it from.
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Notify implements notify.Notifier. It never blocks: when the hub is
// saturated the notification is dropped for websocket listeners.
func (h *Hub) Notify(n notify.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal notification for broadcast")
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn().Str("screen", n.Screen).Msg("Notification hub saturated, dropping broadcast")
	}
}

// ClientsCount returns the number of connected clients
func (h *Hub) ClientsCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(client)
}

// dropLocked removes client; h.mu must be held for writing.
func (h *Hub) dropLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr()).
		Msg("Client unregistered")
}

func (h *Hub) broadcastMessage(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 {
		h.logger.Debug().Msg("No clients connected for broadcast")
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow or gone; the write pump closes the connection once send is closed.
			h.dropLocked(client)
		}
	}

	h.logger.Debug().
		Int("clientCount", len(h.clients)).
		Msg("Notification broadcasted")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		h.dropLocked(client)
	}
}
