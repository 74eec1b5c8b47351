package baritem

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/i18n"
	"github.com/vovakirdan/ircbar/internal/irccolor"
	"github.com/vovakirdan/ircbar/internal/session"
	"github.com/vovakirdan/ircbar/internal/style"
)

// Away shows the away message (or the word "away") while the bound server
// is marked away.
func Away(ctx Context) (string, bool) {
	srv, _ := ctx.binding()
	if srv == nil || !srv.IsAway {
		return "", false
	}
	text := awayText(srv.AwayMessage, ctx.options().Bool(config.OptItemAwayMessage), ctx.word(i18n.Away))
	return style.Marker(style.Away) + text, true
}

func awayText(message string, showMessage bool, fallback string) string {
	if showMessage && message != "" {
		return message
	}
	return fallback
}

// BufferTitle shows the buffer title with IRC colors decoded, or stripped
// when look.topic_strip_colors is on. A buffer without title shows nothing;
// an empty title is still shown.
func BufferTitle(ctx Context) (string, bool) {
	if ctx.Buffer == nil || ctx.Buffer.Title == nil {
		return "", false
	}
	return titleText(*ctx.Buffer.Title, ctx.options().Bool(config.OptTopicStripColors)), true
}

func titleText(title string, strip bool) string {
	if !strip {
		return irccolor.Decode(title, true)
	}
	stripped := irccolor.Strip(title)
	if strings.IndexByte(stripped, '\x1b') >= 0 {
		stripped = ansi.Strip(stripped)
	}
	return stripped
}

// BufferPlugin shows the plugin owning the buffer. For IRC channel buffers
// the server name is appended when look.item_display_server is
// buffer_plugin.
func BufferPlugin(ctx Context) (string, bool) {
	if ctx.Buffer == nil {
		return "", false
	}
	name := ctx.Buffer.PluginName()
	if name != session.PluginIRC {
		return name, true
	}
	srv, ch := ctx.binding()
	if srv == nil || ch == nil || ctx.options().Int(config.OptItemDisplayServer) != config.DisplayServerPlugin {
		return name, true
	}
	return name + style.Marker(style.Delimiter) + "/" + style.Marker(style.BarForeground) + srv.Name, true
}
