package relay

import (
	"time"

	"github.com/google/uuid"
)

// Client is a relay client connection. Clients form a singly linked list
// owned by Registry, newest first.
type Client struct {
	ID           string
	Description  string
	Protocol     string
	Address      string
	TLS          bool
	Status       Status
	StartTime    time.Time
	EndTime      time.Time
	LastActivity time.Time
	BytesRecv    uint64
	BytesSent    uint64

	next *Client
}

// Next returns the following client in the registry, or nil.
func (c *Client) Next() *Client {
	return c.next
}

// Registry is the list of relay clients with its separately maintained
// count. Only the connection manager mutates it; queries read it between
// mutations on the same event loop.
type Registry struct {
	head  *Client
	count int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Head returns the most recently added client.
func (r *Registry) Head() *Client {
	return r.head
}

// Count returns the maintained number of clients without walking the list.
func (r *Registry) Count() int {
	return r.count
}

// Add inserts c at the head of the list. Missing identity and start time
// are filled in.
func (r *Registry) Add(c *Client) *Client {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.StartTime.IsZero() {
		c.StartTime = time.Now()
	}
	if c.LastActivity.IsZero() {
		c.LastActivity = c.StartTime
	}
	c.next = r.head
	r.head = c
	r.count++
	return c
}

// Remove unlinks c. It returns false when c is not in the list.
func (r *Registry) Remove(c *Client) bool {
	var prev *Client
	for cur := r.head; cur != nil; cur = cur.next {
		if cur != c {
			prev = cur
			continue
		}
		if prev == nil {
			r.head = cur.next
		} else {
			prev.next = cur.next
		}
		cur.next = nil
		r.count--
		return true
	}
	return false
}

// SetStatus changes a client's status, stamping the end time when the
// client reaches a final status.
func (r *Registry) SetStatus(c *Client, s Status) {
	c.Status = s
	c.LastActivity = time.Now()
	if s.Ended() && c.EndTime.IsZero() {
		c.EndTime = c.LastActivity
	}
}

// Valid reports whether c is still reachable from the head.
func (r *Registry) Valid(c *Client) bool {
	if c == nil {
		return false
	}
	for cur := r.head; cur != nil; cur = cur.next {
		if cur == c {
			return true
		}
	}
	return false
}

// Find returns the client with the given identity, or nil.
func (r *Registry) Find(id string) *Client {
	for cur := r.head; cur != nil; cur = cur.next {
		if cur.ID == id {
			return cur
		}
	}
	return nil
}
