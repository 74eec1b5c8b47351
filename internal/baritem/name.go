package baritem

import (
	"strings"

	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/i18n"
	"github.com/vovakirdan/ircbar/internal/session"
	"github.com/vovakirdan/ircbar/internal/style"
)

// nameStyle selects how a buffer name is decorated.
type nameStyle struct {
	secure        bool // use the TLS status color when the server has TLS
	displayServer bool // prefix channel names with "server/"
	modes         bool // append channel modes
	hideKey       bool // drop mode arguments when a key is set
}

// BufferName shows the server or channel name of the buffer, decorated with
// TLS color, parted state and channel modes. Buffers not bound to IRC show
// their own name.
func BufferName(ctx Context) (string, bool) {
	if ctx.Buffer == nil {
		return "", false
	}
	opts := ctx.options()
	return composeName(ctx, nameStyle{
		secure:        true,
		displayServer: opts.Int(config.OptItemDisplayServer) == config.DisplayServerName,
		modes:         opts.Bool(config.OptItemChannelModes),
		hideKey:       opts.Bool(config.OptItemChannelModesHideKey),
	}), true
}

// ChannelName is BufferName without modes and without the TLS color.
func ChannelName(ctx Context) (string, bool) {
	if ctx.Buffer == nil {
		return "", false
	}
	return composeName(ctx, nameStyle{
		displayServer: ctx.options().Int(config.OptItemDisplayServer) == config.DisplayServerName,
	}), true
}

func composeName(ctx Context, ns nameStyle) string {
	srv, ch := ctx.binding()
	status := statusMarker(srv, ns.secure)

	var name, modes string
	switch {
	case srv != nil && ch == nil:
		name = serverSegment(srv.Name, ctx.word(i18n.Server), status)
	case ch != nil:
		name = channelSegment(srv, ch, status, ns.displayServer)
		if ns.modes && !ch.Parted() {
			if text, ok := modesText(ch.Modes, ns.hideKey); ok {
				modes = modesSuffix(text)
			}
		}
	default:
		name = ctx.Buffer.Name
	}

	var b strings.Builder
	b.Grow(len(status) + len(name) + len(modes))
	b.WriteString(status)
	b.WriteString(name)
	b.WriteString(modes)
	return b.String()
}

// statusMarker returns the TLS status color when allowed and the server
// is connected over TLS.
func statusMarker(srv *session.Server, allowSecure bool) string {
	return style.StatusMarker(allowSecure && srv != nil && srv.SSLConnected)
}

// serverSegment renders `server[name]`.
func serverSegment(name, word, status string) string {
	delim := style.Marker(style.Delimiter)
	return word + delim + "[" + status + name + delim + "]"
}

// channelSegment renders the channel name, optionally prefixed by the
// server name, wrapped in parentheses when the channel was parted.
func channelSegment(srv *session.Server, ch *session.Channel, status string, displayServer bool) string {
	delim := style.Marker(style.Delimiter)
	parted := ch.Parted()

	var b strings.Builder
	if parted {
		b.WriteString(delim)
		b.WriteString("(")
	}
	b.WriteString(status)
	if srv != nil && displayServer {
		b.WriteString(srv.Name)
		b.WriteString(delim)
		b.WriteString("/")
	}
	b.WriteString(status)
	b.WriteString(ch.Name)
	if parted {
		b.WriteString(delim)
		b.WriteString(")")
	}
	return b.String()
}

// modesText returns the mode string to display. ok is false when there
// are no modes worth showing. With hideKey, a key flag appearing before
// the first space truncates the modes to their flags, hiding the key.
func modesText(modes string, hideKey bool) (string, bool) {
	if modes == "" || modes == "+" {
		return "", false
	}
	if hideKey {
		if space := strings.IndexByte(modes, ' '); space >= 0 {
			if key := strings.IndexByte(modes, 'k'); key >= 0 && key < space {
				return modes[:space], true
			}
		}
	}
	return modes, true
}

func modesSuffix(modes string) string {
	delim := style.Marker(style.Delimiter)
	return delim + "(" + style.Marker(style.ChannelModes) + modes + delim + ")"
}
