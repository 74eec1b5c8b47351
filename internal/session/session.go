package session

import "time"

// PluginIRC is the plugin name owning IRC buffers.
const PluginIRC = "irc"

// ChannelType distinguishes multi-user channels from private buffers.
type ChannelType int

const (
	// ChannelTypeChannel is a multi-user channel.
	ChannelTypeChannel ChannelType = iota
	// ChannelTypePrivate is a query with a single remote nick.
	ChannelTypePrivate
)

// String returns the lowercase type name.
func (t ChannelType) String() string {
	if t == ChannelTypePrivate {
		return "private"
	}
	return "channel"
}

// Server is a connection to an IRC server as maintained by the network layer.
type Server struct {
	Name         string
	IsAway       bool
	AwayMessage  string
	Lag          int       // milliseconds
	LagCheckTime time.Time // zero once the lag check finished
	SSLConnected bool
	Nick         string
	NickModes    string
	Channels     []*Channel
}

// LagCounting reports whether a lag check is in flight.
func (s *Server) LagCounting() bool {
	return !s.LagCheckTime.IsZero()
}

// Channel is a channel or private buffer joined on a server.
type Channel struct {
	Type  ChannelType
	Name  string
	Modes string
	Nicks []*Nick
}

// NickCount returns the number of nicks present in the channel.
func (c *Channel) NickCount() int {
	return len(c.Nicks)
}

// Parted reports whether the local user left a multi-user channel whose
// buffer is still open.
func (c *Channel) Parted() bool {
	return c.Type == ChannelTypeChannel && c.NickCount() == 0
}

// Nick is a nickname present in a channel.
type Nick struct {
	Name        string
	Prefix      string // single char, " " when the nick has no mode
	PrefixColor string // color name chosen for the prefix mode
}

// HasPrefix reports whether the nick carries a visible mode prefix.
func (n *Nick) HasPrefix() bool {
	return n.Prefix != "" && n.Prefix[0] != ' '
}

// Buffer is a display surface. Local variables bind it to a server and,
// for channel buffers, to a channel.
type Buffer struct {
	Name    string
	Title   *string // nil when no title was ever set
	Plugin  string
	Server  string
	Channel string
}

// PluginName returns the owning plugin, "core" for buffers without one.
func (b *Buffer) PluginName() string {
	if b.Plugin == "" {
		return "core"
	}
	return b.Plugin
}

// FullName is the plugin-qualified buffer name.
func (b *Buffer) FullName() string {
	return b.PluginName() + "." + b.Name
}
