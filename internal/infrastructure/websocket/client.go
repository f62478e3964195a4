package websocket

import (
	"sync"

	"github.com/gorilla/websocket"

	"barterex/pkg/logger"
)

// Client is one authenticated WebSocket connection. UserID is bound during
// the handshake and never changes for the connection's lifetime.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte

	mu     sync.Mutex
	closed bool
}

// enqueue queues one frame for WritePump. It reports false when the
// connection is already closed or its buffer is full; either way the caller
// is never blocked and never sends on a closed channel.
func (c *Client) enqueue(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

// close shuts the send channel exactly once. enqueue and close share the
// mutex, so no frame can hit the channel after it closes.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// ReadPump reads frames from the connection and hands them to the dispatcher.
// Events for one connection are processed in arrival order, each running to
// completion before the next is read.
func (c *Client) ReadPump(m *Manager, dispatch func(client *Client, payload []byte)) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("Read error from client %s: %v", c.UserID, err)
			}
			break
		}

		dispatch(c, payload)
	}
}

// WritePump drains the send channel onto the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Error("Write error to client %s: %v", c.UserID, err)
			return
		}
	}
}
