package relay

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nnonaka/KeePassium/internal/events"
	"github.com/nnonaka/KeePassium/internal/settings"
)

// Client is the extension side of the relay. It dials the hub hosted by
// the main app, sends local changes up, and injects remote changes into
// its local bus.
type Client struct {
	bus   *events.Bus[settings.Key]
	guard *injectGuard
	sub   *events.Subscription[settings.Key]

	conn    *websocket.Conn
	writeMu sync.Mutex

	closeOnce sync.Once
}

// Dial connects to the hub at url (a ws:// URL) and starts relaying.
func Dial(url string, bus *events.Bus[settings.Key]) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to settings relay at %s: %w", url, err)
	}

	c := &Client{
		bus:   bus,
		guard: newInjectGuard(),
		conn:  conn,
	}
	c.sub = bus.Subscribe(c.onLocalChange)
	go c.readLoop()
	return c, nil
}

// Close stops relaying and closes the connection.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.sub.Unsubscribe()
		err = c.conn.Close()
	})
	return err
}

func (c *Client) onLocalChange(key settings.Key) {
	if c.guard.active(key) {
		return
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(changeFrame{Key: string(key)}); err != nil {
		log.Printf("[relay] send %s: %v", key, err)
	}
}

// readLoop receives remote changes until the connection closes. Running
// it also services the hub's keepalive pings.
func (c *Client) readLoop() {
	defer c.conn.Close()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	c.conn.SetPingHandler(func(appData string) error {
		c.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return c.conn.WriteControl(
			websocket.PongMessage, []byte(appData),
			time.Now().Add(10*time.Second),
		)
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[relay] read error: %v", err)
			}
			return
		}

		c.conn.SetReadDeadline(time.Now().Add(90 * time.Second))

		key, err := decodeFrame(message)
		if err != nil {
			// Version skew or garbage: dropped, never fatal.
			log.Printf("[relay] dropping frame: %v", err)
			continue
		}

		c.guard.run(key, func() {
			c.bus.Publish(key)
		})
	}
}
