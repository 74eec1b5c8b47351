package session

// Reader is the read-only view label composers get of the session state.
type Reader interface {
	// Binding resolves the server and channel a buffer is bound to. Either
	// may be nil.
	Binding(buf *Buffer) (*Server, *Channel)
	// SearchNick finds a nick in a channel using IRC case mapping.
	SearchNick(ch *Channel, nick string) *Nick
}

// Graph holds every server and buffer known to the client. It is owned by
// the network layer; readers must not keep pointers across event loop turns.
type Graph struct {
	Servers []*Server
	Buffers []*Buffer
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Server returns the server with the given name, or nil.
func (g *Graph) Server(name string) *Server {
	for _, s := range g.Servers {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Buffer finds a buffer by full name ("irc.libera.#go") or short name.
func (g *Graph) Buffer(name string) *Buffer {
	for _, b := range g.Buffers {
		if b.FullName() == name {
			return b
		}
	}
	for _, b := range g.Buffers {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Binding implements Reader. Buffers of other plugins and bindings that
// point at servers or channels no longer present resolve to nil.
func (g *Graph) Binding(buf *Buffer) (*Server, *Channel) {
	if buf == nil || buf.Plugin != PluginIRC || buf.Server == "" {
		return nil, nil
	}
	srv := g.Server(buf.Server)
	if srv == nil {
		return nil, nil
	}
	if buf.Channel == "" {
		return srv, nil
	}
	for _, ch := range srv.Channels {
		if EqualFold(ch.Name, buf.Channel) {
			return srv, ch
		}
	}
	return srv, nil
}

// SearchNick implements Reader.
func (g *Graph) SearchNick(ch *Channel, nick string) *Nick {
	if ch == nil || nick == "" {
		return nil
	}
	for _, n := range ch.Nicks {
		if EqualFold(n.Name, nick) {
			return n
		}
	}
	return nil
}

// EqualFold compares two names with rfc1459 case mapping, where {}|^ are
// the lowercase forms of []\~.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if foldByte(a[i]) != foldByte(b[i]) {
			return false
		}
	}
	return true
}

func foldByte(c byte) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return c + ('a' - 'A')
	case c == '[':
		return '{'
	case c == ']':
		return '}'
	case c == '\\':
		return '|'
	case c == '~':
		return '^'
	}
	return c
}
