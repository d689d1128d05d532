package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Hub maintains the set of connected dashboard clients and pushes announcement
// events to all of them. Delivery is fire-and-forget and at-most-once: there is
// no acknowledgement, no retry, and no backlog. A client that connects after an
// event was pushed never receives it and must re-fetch via the list endpoint.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Channel for outbound events
	broadcast chan *Event

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex for concurrent access to clients map
	mu sync.RWMutex

	// Invoked with the new client count after every register/unregister
	onCountChange func(int)

	// Logger for Hub operations
	logger zerolog.Logger
}

// Event is one message pushed over the feed
type Event struct {
	// Event name: "newAnnouncement", "announcementDeleted"
	Event string `json:"event"`

	// Event payload, typically the announcement record
	Data interface{} `json:"data"`

	// Timestamp when the event was pushed
	Timestamp time.Time `json:"timestamp"`
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan *Event, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// OnClientCountChange sets a callback invoked whenever the number of connected
// clients changes. Must be called before Run.
func (h *Hub) OnClientCountChange(fn func(int)) {
	h.onCountChange = fn
}

func (h *Hub) notifyCountChange() {
	if h.onCountChange != nil {
		h.onCountChange(len(h.clients))
	}
}

// Run starts the hub, handling client registrations and broadcasts
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.notifyCountChange()

	h.logger.Info().
		Str("addr", client.conn.RemoteAddr().String()).
		Int("clientCount", len(h.clients)).
		Msg("Announcement feed client registered")
}

// unregisterClient unregisters a client from the hub
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		h.notifyCountChange()

		h.logger.Info().
			Str("addr", client.conn.RemoteAddr().String()).
			Int("clientCount", len(h.clients)).
			Msg("Announcement feed client unregistered")
	}
}

// broadcastEvent pushes an event to every connected client
func (h *Hub) broadcastEvent(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) == 0 {
		h.logger.Debug().Str("event", event.Event).Msg("No clients connected for broadcast")
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("event", event.Event).Msg("Failed to marshal event for broadcast")
		return
	}

	var dropped []*Client
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Client's send buffer is full, they might be slow or disconnected
			dropped = append(dropped, client)
		}
	}

	for _, client := range dropped {
		delete(h.clients, client)
		close(client.send)
		h.logger.Warn().
			Str("addr", client.conn.RemoteAddr().String()).
			Msg("Dropped slow announcement feed client")
	}
	if len(dropped) > 0 {
		h.notifyCountChange()
	}

	h.logger.Debug().
		Str("event", event.Event).
		Int("clientCount", len(h.clients)).
		Msg("Event broadcasted")
}

// Broadcast queues an event for delivery to all connected clients. It never
// blocks the caller: when the broadcast queue itself is saturated the event is
// dropped, matching the feed's at-most-once contract.
func (h *Hub) Broadcast(event string, data interface{}) {
	e := &Event{
		Event:     event,
		Data:      data,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- e:
	default:
		h.logger.Warn().Str("event", event).Msg("Broadcast queue full, event dropped")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
