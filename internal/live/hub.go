package live

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/shubham56-h/Trackify/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Hub fans a user's workout events out to every live connection that user
// has open. Users never see each other's events.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	stopOnce   sync.Once
	metrics    *metrics.Manager
	mu         sync.RWMutex
}

func NewHub(m *metrics.Manager) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		metrics:    m,
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for _, set := range h.clients {
				for client := range set {
					client.close()
				}
			}
			h.clients = make(map[uuid.UUID]map[*Client]bool)
			h.mu.Unlock()
			h.metrics.LiveClients(0)
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				set, ok := h.clients[client.userID]
				if !ok {
					set = make(map[*Client]bool)
					h.clients[client.userID] = set
				}
				set[client] = true
			}
			count := h.countLocked()
			h.mu.Unlock()
			h.metrics.LiveClients(count)

		case client := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[client.userID]; ok && set[client] {
				delete(set, client)
				if len(set) == 0 {
					delete(h.clients, client.userID)
				}
				client.close()
			}
			count := h.countLocked()
			h.mu.Unlock()
			h.metrics.LiveClients(count)
		}
	}
}

// Stop shuts the hub down and closes every client. It blocks until Run exits.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stop)
	})
	<-h.done
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.close()
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish delivers an event to all of userID's connections. Slow clients
// whose buffers are full miss the event rather than blocking the caller.
func (h *Hub) Publish(userID uuid.UUID, eventType string, payload interface{}) {
	msg, err := NewMessage(eventType, payload)
	if err != nil {
		log.Errorf("[live.Publish] failed to build %s message: %v", eventType, err)
		return
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("[live.Publish] failed to marshal %s message: %v", eventType, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.stopped {
		return
	}
	for client := range h.clients[userID] {
		select {
		case client.send <- data:
		default:
			log.WithField("user_id", userID).Warnf("[live.Publish] dropping %s for slow client", eventType)
		}
	}
}

// ClientCount returns the number of open connections for userID.
func (h *Hub) ClientCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}
