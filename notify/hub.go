package notify

import "sync"

// Client is one connected dashboard session. Send is closed by the hub
// and only the hub; producers hand payloads to Broadcast or Deliver.
type Client struct {
	Send   chan []byte
	UserID string
}

type directMsg struct {
	client *Client
	data   []byte
}

// Hub fans reminder payloads out to every connected dashboard client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	deliver    chan directMsg
	stop       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		deliver:    make(chan directMsg),
		stop:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case m := <-h.deliver:
			h.mu.Lock()
			if h.clients[m.client] {
				select {
				case m.client.Send <- m.data:
				default:
					close(m.client.Send)
					delete(h.clients, m.client)
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop shuts the hub down and closes every client send channel.
func (h *Hub) Stop() {
	close(h.stop)
}

// Broadcast queues a payload for every connected client. Calls racing
// shutdown return without blocking.
func (h *Hub) Broadcast(data []byte) {
	select {
	case h.broadcast <- data:
	case <-h.stop:
	}
}

// Deliver queues a payload for a single client. Payloads for clients no
// longer registered are dropped, so a disconnect mid-replay is harmless.
func (h *Hub) Deliver(c *Client, data []byte) {
	select {
	case h.deliver <- directMsg{client: c, data: data}:
	case <-h.stop:
	}
}
