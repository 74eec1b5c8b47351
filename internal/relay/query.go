package relay

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrStaleClient is returned when a client is no longer in the registry.
var ErrStaleClient = errors.New("stale relay client")

// Record is the structured snapshot of one client.
type Record struct {
	ID           string     `json:"id" yaml:"id"`
	Description  string     `json:"description" yaml:"description"`
	Protocol     string     `json:"protocol" yaml:"protocol"`
	Address      string     `json:"address" yaml:"address"`
	TLS          bool       `json:"tls" yaml:"tls"`
	Status       string     `json:"status" yaml:"status"`
	StatusString string     `json:"status_string" yaml:"status_string"`
	StartTime    time.Time  `json:"start_time" yaml:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	LastActivity time.Time  `json:"last_activity" yaml:"last_activity"`
	BytesRecv    uint64     `json:"bytes_recv" yaml:"bytes_recv"`
	BytesSent    uint64     `json:"bytes_sent" yaml:"bytes_sent"`
}

func recordOf(c *Client) Record {
	rec := Record{
		ID:           c.ID,
		Description:  c.Description,
		Protocol:     c.Protocol,
		Address:      c.Address,
		TLS:          c.TLS,
		Status:       c.Status.String(),
		StatusString: c.Status.Label(),
		StartTime:    c.StartTime,
		LastActivity: c.LastActivity,
		BytesRecv:    c.BytesRecv,
		BytesSent:    c.BytesSent,
	}
	if !c.EndTime.IsZero() {
		end := c.EndTime
		rec.EndTime = &end
	}
	return rec
}

// Service answers count and list queries over a Registry.
type Service struct {
	reg *Registry
	log *zerolog.Logger
}

// NewService builds a query service for reg.
func NewService(reg *Registry, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{reg: reg, log: logger}
}

// Registry returns the queried registry.
func (s *Service) Registry() *Registry {
	return s.reg
}

// Count returns the number of clients. An empty filter returns the
// maintained total as is; otherwise the filter names a status and every
// client is visited.
func (s *Service) Count(filter string) (int, error) {
	if filter == "" {
		return s.reg.Count(), nil
	}
	status, err := ParseStatus(filter)
	if err != nil {
		return 0, err
	}
	n := 0
	for c := s.reg.Head(); c != nil; c = c.next {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

// List snapshots c, or every client head to tail when c is nil.
func (s *Service) List(c *Client) ([]Record, error) {
	if c != nil {
		if !s.reg.Valid(c) {
			return nil, ErrStaleClient
		}
		return []Record{recordOf(c)}, nil
	}
	out := make([]Record, 0, max(s.reg.Count(), 0))
	for cur := s.reg.Head(); cur != nil; cur = cur.next {
		out = append(out, recordOf(cur))
	}
	return out, nil
}

// ListID is List addressed by client identity. An empty id lists all.
func (s *Service) ListID(id string) ([]Record, error) {
	if id == "" {
		return s.List(nil)
	}
	c := s.reg.Find(id)
	if c == nil {
		return nil, fmt.Errorf("%s: %w", id, ErrStaleClient)
	}
	return s.List(c)
}
