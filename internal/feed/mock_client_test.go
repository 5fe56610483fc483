package feed_test

import (
	"sync"

	"complaintdesk/backend/internal/models"
)

// mockClient is a minimal in-memory implementation of the feed.Client
// interface for hub tests.
type mockClient struct {
	id     string
	send   chan models.ComplaintEvent
	mu     sync.Mutex
	closed bool
}

func newMockClient(id string, buffer int) *mockClient {
	return &mockClient{
		id:   id,
		send: make(chan models.ComplaintEvent, buffer),
	}
}

func (c *mockClient) GetID() string                                { return c.id }
func (c *mockClient) GetSendChannel() chan<- models.ComplaintEvent { return c.send }
func (c *mockClient) Run()                                         {}

func (c *mockClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *mockClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
