// Package state loads session and relay snapshots from YAML files. Hosts
// without a live network layer use it to feed the label composers.
package state

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ircbar/internal/relay"
	"github.com/vovakirdan/ircbar/internal/session"
)

// ErrInvalidState is returned for structurally wrong snapshots.
var ErrInvalidState = errors.New("invalid state")

// File is the on-disk snapshot layout. Relay clients are listed head
// first, newest connection on top.
type File struct {
	Servers      []ServerFile      `yaml:"servers"`
	Buffers      []BufferFile      `yaml:"buffers"`
	RelayClients []RelayClientFile `yaml:"relay_clients"`
}

type ServerFile struct {
	Name        string        `yaml:"name"`
	Away        bool          `yaml:"away"`
	AwayMessage string        `yaml:"away_message"`
	Lag         int           `yaml:"lag"`
	LagCounting bool          `yaml:"lag_counting"`
	SSL         bool          `yaml:"ssl"`
	Nick        string        `yaml:"nick"`
	NickModes   string        `yaml:"nick_modes"`
	Channels    []ChannelFile `yaml:"channels"`
}

type ChannelFile struct {
	Name  string     `yaml:"name"`
	Type  string     `yaml:"type"`
	Modes string     `yaml:"modes"`
	Nicks []NickFile `yaml:"nicks"`
}

type NickFile struct {
	Name        string `yaml:"name"`
	Prefix      string `yaml:"prefix"`
	PrefixColor string `yaml:"prefix_color"`
}

type BufferFile struct {
	Name    string  `yaml:"name"`
	Title   *string `yaml:"title"`
	Plugin  string  `yaml:"plugin"`
	Server  string  `yaml:"server"`
	Channel string  `yaml:"channel"`
}

type RelayClientFile struct {
	ID           string    `yaml:"id"`
	Description  string    `yaml:"description"`
	Protocol     string    `yaml:"protocol"`
	Address      string    `yaml:"address"`
	TLS          bool      `yaml:"tls"`
	Status       string    `yaml:"status"`
	StartTime    time.Time `yaml:"start_time"`
	EndTime      time.Time `yaml:"end_time"`
	LastActivity time.Time `yaml:"last_activity"`
	BytesRecv    uint64    `yaml:"bytes_recv"`
	BytesSent    uint64    `yaml:"bytes_sent"`
}

// Snapshot is a loaded state.
type Snapshot struct {
	Graph *session.Graph
	Relay *relay.Registry
}

// Empty returns a snapshot with nothing in it.
func Empty() Snapshot {
	return Snapshot{Graph: session.NewGraph(), Relay: relay.NewRegistry()}
}

// Load reads the snapshot at path.
func Load(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read state: %w", err)
	}
	snap, err := Parse(data, time.Now())
	if err != nil {
		return Snapshot{}, fmt.Errorf("state %s: %w", path, err)
	}
	return snap, nil
}

// Parse decodes a snapshot. now stamps servers with a lag check in flight.
func Parse(data []byte, now time.Time) (Snapshot, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Snapshot{}, fmt.Errorf("decode state: %w", err)
	}
	return f.Build(now)
}

// Build turns the file layout into live session and relay structures.
func (f File) Build(now time.Time) (Snapshot, error) {
	snap := Empty()

	for _, sf := range f.Servers {
		if sf.Name == "" {
			return Snapshot{}, fmt.Errorf("%w: server without name", ErrInvalidState)
		}
		if snap.Graph.Server(sf.Name) != nil {
			return Snapshot{}, fmt.Errorf("%w: duplicate server %q", ErrInvalidState, sf.Name)
		}
		srv := &session.Server{
			Name:         sf.Name,
			IsAway:       sf.Away,
			AwayMessage:  sf.AwayMessage,
			Lag:          sf.Lag,
			SSLConnected: sf.SSL,
			Nick:         sf.Nick,
			NickModes:    sf.NickModes,
		}
		if sf.LagCounting {
			srv.LagCheckTime = now
		}
		for _, cf := range sf.Channels {
			ch, err := cf.build()
			if err != nil {
				return Snapshot{}, fmt.Errorf("server %q: %w", sf.Name, err)
			}
			srv.Channels = append(srv.Channels, ch)
		}
		snap.Graph.Servers = append(snap.Graph.Servers, srv)
	}

	for _, bf := range f.Buffers {
		if bf.Name == "" {
			return Snapshot{}, fmt.Errorf("%w: buffer without name", ErrInvalidState)
		}
		snap.Graph.Buffers = append(snap.Graph.Buffers, &session.Buffer{
			Name:    bf.Name,
			Title:   bf.Title,
			Plugin:  bf.Plugin,
			Server:  bf.Server,
			Channel: bf.Channel,
		})
	}

	// Add prepends, so walk the list backwards to keep the file order.
	for i := len(f.RelayClients) - 1; i >= 0; i-- {
		rf := f.RelayClients[i]
		st, err := relay.ParseStatus(rf.Status)
		if err != nil {
			return Snapshot{}, fmt.Errorf("relay client %d: %w", i, err)
		}
		snap.Relay.Add(&relay.Client{
			ID:           rf.ID,
			Description:  rf.Description,
			Protocol:     rf.Protocol,
			Address:      rf.Address,
			TLS:          rf.TLS,
			Status:       st,
			StartTime:    rf.StartTime,
			EndTime:      rf.EndTime,
			LastActivity: rf.LastActivity,
			BytesRecv:    rf.BytesRecv,
			BytesSent:    rf.BytesSent,
		})
	}

	return snap, nil
}

func (cf ChannelFile) build() (*session.Channel, error) {
	ch := &session.Channel{Name: cf.Name, Modes: cf.Modes}
	switch cf.Type {
	case "", "channel":
		ch.Type = session.ChannelTypeChannel
	case "private":
		ch.Type = session.ChannelTypePrivate
	default:
		return nil, fmt.Errorf("%w: channel %q has type %q", ErrInvalidState, cf.Name, cf.Type)
	}
	for _, nf := range cf.Nicks {
		prefix := nf.Prefix
		if prefix == "" {
			prefix = " "
		}
		ch.Nicks = append(ch.Nicks, &session.Nick{
			Name:        nf.Name,
			Prefix:      prefix,
			PrefixColor: nf.PrefixColor,
		})
	}
	return ch, nil
}
