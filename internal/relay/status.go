package relay

import (
	"errors"
	"fmt"
)

// Status is the connection state of a relay client.
type Status int

const (
	StatusConnecting Status = iota
	StatusWaitingAuth
	StatusConnected
	StatusAuthFailed
	StatusDisconnected
)

// statusNames is the fixed vocabulary accepted by status filters. The
// names are part of the query interface and are never translated.
var statusNames = [...]string{
	StatusConnecting:   "connecting",
	StatusWaitingAuth:  "waiting_auth",
	StatusConnected:    "connected",
	StatusAuthFailed:   "auth_failed",
	StatusDisconnected: "disconnected",
}

// statusLabels are the human readable forms used in snapshots.
var statusLabels = [...]string{
	StatusConnecting:   "connecting",
	StatusWaitingAuth:  "waiting auth",
	StatusConnected:    "connected",
	StatusAuthFailed:   "authentication failed",
	StatusDisconnected: "disconnected",
}

// ErrInvalidStatus is returned when a filter names no known status.
var ErrInvalidStatus = errors.New("invalid relay client status")

// String returns the status name.
func (s Status) String() string {
	if !s.valid() {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// Label returns the human readable status.
func (s Status) Label() string {
	if !s.valid() {
		return s.String()
	}
	return statusLabels[s]
}

// Ended reports whether the client will not become active again.
func (s Status) Ended() bool {
	return s == StatusAuthFailed || s == StatusDisconnected
}

func (s Status) valid() bool {
	return s >= 0 && int(s) < len(statusNames)
}

// ParseStatus resolves a status name. Matching is exact.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrInvalidStatus)
}

// StatusNames returns the accepted status names in declaration order.
func StatusNames() []string {
	out := make([]string, len(statusNames))
	copy(out, statusNames[:])
	return out
}
