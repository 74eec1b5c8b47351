package baritem

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/i18n"
	"github.com/vovakirdan/ircbar/internal/session"
	"github.com/vovakirdan/ircbar/internal/style"
)

// Lag shows the server lag once it reaches network.lag_min_show.
func Lag(ctx Context) (string, bool) {
	srv, _ := ctx.binding()
	if srv == nil || srv.Lag < ctx.options().Int(config.OptLagMinShow) {
		return "", false
	}
	counting := srv.LagCounting()
	marker := style.Marker(style.LagFinished)
	if counting {
		marker = style.Marker(style.LagCounting)
	}
	return ctx.word(i18n.Lag) + ": " + marker + lagText(srv.Lag, counting), true
}

// lagText formats lag milliseconds as seconds: three decimals below one
// second or once the check finished, no decimals while a long check is
// still counting.
func lagText(lag int, counting bool) string {
	prec := 3
	if counting && lag >= 1000 {
		prec = 0
	}
	return strconv.FormatFloat(float64(lag)/1000, 'f', prec, 64)
}

// InputPrompt shows the local nick, its channel prefix and its user modes.
func InputPrompt(ctx Context) (string, bool) {
	srv, ch := ctx.binding()
	if srv == nil || srv.Nick == "" {
		return "", false
	}
	opts := ctx.options()

	var prefix string
	if opts.Bool(config.OptItemNickPrefix) {
		prefix = nickPrefix(ctx.Session, srv, ch)
	}
	var modes string
	if opts.Bool(config.OptItemNickModes) {
		modes = srv.NickModes
	}
	return promptText(prefix, srv.Nick, modes), true
}

// nickPrefix returns the colored mode prefix of the local nick in a
// multi-user channel, or "".
func nickPrefix(r session.Reader, srv *session.Server, ch *session.Channel) string {
	if r == nil || ch == nil || ch.Type != session.ChannelTypeChannel {
		return ""
	}
	n := r.SearchNick(ch, srv.Nick)
	if n == nil || !n.HasPrefix() {
		return ""
	}
	return style.Color(n.PrefixColor) + n.Prefix
}

func promptText(prefix, nick, modes string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(style.Marker(style.InputNick))
	b.WriteString(nick)
	if modes != "" {
		delim := style.Marker(style.Delimiter)
		b.WriteString(delim)
		b.WriteString("(")
		b.WriteString(style.Marker(style.BarForeground))
		b.WriteString(modes)
		b.WriteString(delim)
		b.WriteString(")")
	}
	return b.String()
}
