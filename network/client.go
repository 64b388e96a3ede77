// Package network is a headless websocket client for the action server,
// used to drive a combatant from another process.
package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/doomerang-actions/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	default:
		return "disconnected"
	}
}

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	conn      *websocket.Conn
	sequence  uint32
	snapshots uint64

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
	}
}

// Connect dials the server in a background goroutine. The server spawns a
// combatant for the connection as soon as it is accepted.
func (c *Client) Connect(address string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(c.onConnect)
	router.On(c.onSnapshot)
	router.OnDisconnect(c.onDisconnect)
	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) onConnect(_ *router.NetworkClient) {
	log.Println("[client] connected to server")
	c.mu.Lock()
	c.state = StateConnected
	c.mu.Unlock()
}

func (c *Client) onSnapshot(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
	c.mu.Lock()
	c.snapshots++
	c.mu.Unlock()

	select { // drain stale, push latest
	case <-c.snapshotCh:
	default:
	}
	c.snapshotCh <- snapshot
}

func (c *Client) onDisconnect(_ *router.NetworkClient, err error) {
	log.Printf("[client] disconnected: %v", err)
	c.mu.Lock()
	if c.state != StateError {
		c.state = StateDisconnected
	}
	c.conn = nil
	c.mu.Unlock()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

// Status is a point-in-time view of the connection.
type Status struct {
	State     ClientState
	Err       error
	Snapshots uint64 // world snapshots received so far
	Sequence  uint32 // last input sequence sent
}

func (c *Client) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Status{
		State:     c.state,
		Err:       c.lastError,
		Snapshots: c.snapshots,
		Sequence:  c.sequence,
	}
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// SendInput stamps input with the next sequence number and sends it.
func (c *Client) SendInput(input messages.PlayerInput) error {
	c.mu.Lock()
	c.sequence++
	input.Sequence = c.sequence
	c.mu.Unlock()

	return c.SendMessage(input)
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
