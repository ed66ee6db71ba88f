package livestream

import (
	"sync"
	"time"

	"auction-engine/utils"

	"github.com/gorilla/websocket"
)

// Client pumps one subscriber's events onto a websocket connection.
// Writes are serialized through a mutex; reads only detect the peer closing.
type Client struct {
	conn *websocket.Conn
	sub  *Subscriber
	hub  *Hub

	writeMu      sync.Mutex
	PingInterval time.Duration
	WriteTimeout time.Duration
}

// NewClient wraps an upgraded connection and its hub subscription.
func NewClient(conn *websocket.Conn, hub *Hub, sub *Subscriber) *Client {
	return &Client{
		conn:         conn,
		sub:          sub,
		hub:          hub,
		PingInterval: 30 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Run blocks until the peer disconnects or the subscription is closed.
// It always detaches the subscriber before returning.
func (c *Client) Run() {
	defer func() {
		c.hub.Unsubscribe(c.sub)
		c.conn.Close()
	}()

	closed := make(chan struct{})
	go c.readLoop(closed)

	ticker := time.NewTicker(c.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-c.sub.Events():
			if !ok {
				return
			}
			if err := c.writeJSON(ev); err != nil {
				utils.Warn("live stream write failed", map[string]any{
					"auction_id": c.sub.AuctionID, "user_id": c.sub.UserID, "error": err.Error(),
				})
				return
			}
		case <-ticker.C:
			if err := c.writeControl(websocket.PingMessage); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}

func (c *Client) readLoop(closed chan<- struct{}) {
	defer close(closed)
	for {
		// inbound frames are ignored; the stream is one-way
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(c.WriteTimeout))
	return c.conn.WriteJSON(v)
}

func (c *Client) writeControl(messageType int) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteControl(messageType, nil, time.Now().Add(c.WriteTimeout))
}
