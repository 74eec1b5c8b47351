package session

import "testing"

func testGraph() *Graph {
	general := &Channel{
		Type: ChannelTypeChannel,
		Name: "#Go",
		Nicks: []*Nick{
			{Name: "Alice[m]", Prefix: "@", PrefixColor: "lightgreen"},
			{Name: "bob", Prefix: " "},
		},
	}
	query := &Channel{Type: ChannelTypePrivate, Name: "bob"}
	libera := &Server{Name: "libera", Nick: "alice{m}", Channels: []*Channel{general, query}}

	return &Graph{
		Servers: []*Server{libera},
		Buffers: []*Buffer{
			{Name: "libera", Plugin: PluginIRC, Server: "libera"},
			{Name: "libera.#go", Plugin: PluginIRC, Server: "libera", Channel: "#go"},
			{Name: "weechat"},
		},
	}
}

func TestBinding(t *testing.T) {
	g := testGraph()

	tests := []struct {
		name        string
		buf         *Buffer
		wantServer  bool
		wantChannel string
	}{
		{"nil buffer", nil, false, ""},
		{"core buffer", g.Buffer("weechat"), false, ""},
		{"server buffer", g.Buffer("irc.libera"), true, ""},
		{"channel buffer is case-insensitive", g.Buffer("irc.libera.#go"), true, "#Go"},
		{"unknown server", &Buffer{Plugin: PluginIRC, Server: "oftc"}, false, ""},
		{"stale channel", &Buffer{Plugin: PluginIRC, Server: "libera", Channel: "#gone"}, true, ""},
		{"foreign plugin", &Buffer{Plugin: "relay", Server: "libera"}, false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, ch := g.Binding(tc.buf)
			if (srv != nil) != tc.wantServer {
				t.Fatalf("server = %v, want present=%v", srv, tc.wantServer)
			}
			gotChannel := ""
			if ch != nil {
				gotChannel = ch.Name
			}
			if gotChannel != tc.wantChannel {
				t.Fatalf("channel = %q, want %q", gotChannel, tc.wantChannel)
			}
		})
	}
}

func TestSearchNickUsesRFC1459Mapping(t *testing.T) {
	g := testGraph()
	_, ch := g.Binding(g.Buffer("irc.libera.#go"))

	n := g.SearchNick(ch, "alice{m}")
	if n == nil || n.Prefix != "@" {
		t.Fatalf("SearchNick(alice{m}) = %+v", n)
	}
	if g.SearchNick(ch, "carol") != nil {
		t.Fatalf("SearchNick(carol) should be nil")
	}
	if g.SearchNick(nil, "bob") != nil {
		t.Fatalf("SearchNick on nil channel should be nil")
	}
}

func TestParted(t *testing.T) {
	if !(&Channel{Type: ChannelTypeChannel}).Parted() {
		t.Fatalf("empty channel should be parted")
	}
	if (&Channel{Type: ChannelTypePrivate}).Parted() {
		t.Fatalf("private buffer is never parted")
	}
	if (&Channel{Type: ChannelTypeChannel, Nicks: []*Nick{{Name: "a"}}}).Parted() {
		t.Fatalf("channel with nicks is not parted")
	}
}

func TestBufferNames(t *testing.T) {
	b := &Buffer{Name: "weechat"}
	if b.PluginName() != "core" || b.FullName() != "core.weechat" {
		t.Fatalf("unexpected names: %q %q", b.PluginName(), b.FullName())
	}
}
