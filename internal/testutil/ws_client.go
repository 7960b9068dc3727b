package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dom/recipe-share/internal/domain"
	"github.com/dom/recipe-share/internal/websocket"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test client for the recipe feed
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	messages chan *websocket.Message
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient connects to the feed and starts reading in the background
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := *gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		messages: make(chan *websocket.Message, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// readPump reads messages from the WebSocket connection
func (c *WSClient) readPump() {
	defer close(c.messages)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			case c.errors <- err:
			default:
			}
			return
		}

		var msg websocket.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			select {
			case c.errors <- err:
			default:
			}
			continue
		}

		select {
		case c.messages <- &msg:
		case <-c.done:
			return
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// ExpectMessage waits for a message of the given type, skipping others
func (c *WSClient) ExpectMessage(msgType websocket.MessageType, timeout time.Duration) *websocket.Message {
	c.t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case msg := <-c.messages:
			if msg == nil {
				c.t.Fatalf("connection closed while waiting for %s", msgType)
			}
			if msg.Type == msgType {
				return msg
			}
		case err := <-c.errors:
			c.t.Fatalf("error while waiting for %s: %v", msgType, err)
		case <-deadline:
			c.t.Fatalf("timeout waiting for message type %s", msgType)
		}
	}
}

// ExpectRecipe waits for a created or updated event and decodes its recipe
func (c *WSClient) ExpectRecipe(msgType websocket.MessageType, timeout time.Duration) *domain.Recipe {
	c.t.Helper()

	msg := c.ExpectMessage(msgType, timeout)
	var recipe domain.Recipe
	if err := json.Unmarshal(msg.Payload, &recipe); err != nil {
		c.t.Fatalf("failed to decode %s payload: %v", msgType, err)
	}
	return &recipe
}

// ExpectDeleted waits for a RECIPE_DELETED event and returns the recipe id
func (c *WSClient) ExpectDeleted(timeout time.Duration) string {
	c.t.Helper()

	msg := c.ExpectMessage(websocket.MessageTypeRecipeDeleted, timeout)
	var payload websocket.RecipeDeletedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.t.Fatalf("failed to decode delete payload: %v", err)
	}
	return payload.ID
}

// ExpectNoMessage fails if any message arrives within timeout
func (c *WSClient) ExpectNoMessage(timeout time.Duration) {
	c.t.Helper()

	select {
	case msg := <-c.messages:
		if msg != nil {
			c.t.Fatalf("unexpected message received: %s", msg.Type)
		}
	case <-time.After(timeout):
		// Expected - no message received
	}
}

// ExpectClosed waits for the server to close the connection
func (c *WSClient) ExpectClosed(timeout time.Duration) {
	c.t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case msg, ok := <-c.messages:
			if !ok || msg == nil {
				return
			}
		case <-c.errors:
			return
		case <-deadline:
			c.t.Fatalf("timeout waiting for connection close")
		}
	}
}
