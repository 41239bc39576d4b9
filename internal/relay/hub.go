package relay

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/nnonaka/KeePassium/internal/events"
	"github.com/nnonaka/KeePassium/internal/settings"
)

// Hub is the main-app side of the relay. It accepts WebSocket
// connections from extension processes, forwards local changes to every
// peer, and re-broadcasts a peer's changes to the other peers and into
// the local bus.
type Hub struct {
	bus      *events.Bus[settings.Key]
	guard    *injectGuard
	upgrader websocket.Upgrader
	sub      *events.Subscription[settings.Key]

	mu    sync.Mutex
	peers map[string]*peer
}

// peer wraps one connected extension process.
type peer struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
	done    chan struct{}
}

func (p *peer) writeFrame(f changeFrame) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.conn.WriteJSON(f)
}

// NewHub creates a hub wired to the local change bus.
func NewHub(bus *events.Bus[settings.Key]) *Hub {
	return &Hub{
		bus:   bus,
		guard: newInjectGuard(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		peers: make(map[string]*peer),
	}
}

// Start subscribes the hub to the local change bus.
func (h *Hub) Start() {
	h.sub = h.bus.Subscribe(h.onLocalChange)
}

// Stop unsubscribes from the bus and closes every peer connection.
func (h *Hub) Stop() {
	h.sub.Unsubscribe()

	h.mu.Lock()
	for id, p := range h.peers {
		p.conn.Close()
		delete(h.peers, id)
	}
	h.mu.Unlock()
}

func (h *Hub) onLocalChange(key settings.Key) {
	if h.guard.active(key) {
		return
	}
	h.broadcast(changeFrame{Key: string(key)}, "")
}

// broadcast sends the frame to every peer except the one it came from.
func (h *Hub) broadcast(f changeFrame, exceptID string) {
	h.mu.Lock()
	targets := make([]*peer, 0, len(h.peers))
	for id, p := range h.peers {
		if id != exceptID {
			targets = append(targets, p)
		}
	}
	h.mu.Unlock()

	for _, p := range targets {
		if err := p.writeFrame(f); err != nil {
			log.Printf("[relay] write to peer %s: %v", p.id, err)
		}
	}
}

// HandleConnection is the HTTP handler that upgrades to WebSocket and
// serves one peer until it disconnects.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[relay] upgrade failed: %v", err)
		return
	}

	p := &peer{
		id:   uuid.NewString(),
		conn: conn,
		done: make(chan struct{}),
	}

	h.mu.Lock()
	h.peers[p.id] = p
	h.mu.Unlock()

	log.Printf("[relay] peer %s connected", p.id)
	h.readLoop(p)
	close(p.done)

	h.mu.Lock()
	if h.peers[p.id] == p {
		delete(h.peers, p.id)
	}
	h.mu.Unlock()

	log.Printf("[relay] peer %s disconnected", p.id)
}

// readLoop reads frames from the peer until the connection closes.
func (h *Hub) readLoop(p *peer) {
	defer p.conn.Close()

	p.conn.SetReadLimit(4 * 1024)
	p.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	p.conn.SetPongHandler(func(string) error {
		p.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	go h.pingLoop(p)

	for {
		_, message, err := p.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[relay] read error from peer %s: %v", p.id, err)
			}
			return
		}

		p.conn.SetReadDeadline(time.Now().Add(90 * time.Second))

		key, err := decodeFrame(message)
		if err != nil {
			// Version skew or garbage: dropped, never fatal.
			log.Printf("[relay] dropping frame from peer %s: %v", p.id, err)
			continue
		}

		h.broadcast(changeFrame{Key: string(key)}, p.id)
		h.guard.run(key, func() {
			h.bus.Publish(key)
		})
	}
}

// pingLoop keeps the connection alive.
func (h *Hub) pingLoop(p *peer) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			if err := p.conn.WriteControl(
				websocket.PingMessage, nil,
				time.Now().Add(10*time.Second),
			); err != nil {
				return
			}
		}
	}
}
