package style

import (
	"strconv"
	"strings"
)

// Token is a logical style class used inside bar item labels.
type Token int

const (
	// Delimiter colors brackets, parentheses and slashes.
	Delimiter Token = iota
	// Foreground resets to the default text color.
	Foreground
	// StatusName colors server and channel names.
	StatusName
	// StatusNameSecure colors names of servers connected over TLS.
	StatusNameSecure
	// InputNick colors the local nickname in the input prompt.
	InputNick
	// LagCounting colors the lag value while a ping is outstanding.
	LagCounting
	// LagFinished colors the lag value once the pong arrived.
	LagFinished
	// Away colors the away indicator.
	Away
	// ChannelModes colors the channel mode string.
	ChannelModes
	// BarForeground is the bar's own text color.
	BarForeground
)

var tokenKeys = [...]string{
	Delimiter:        "bar_delim",
	Foreground:       "default",
	StatusName:       "status_name",
	StatusNameSecure: "status_name_ssl",
	InputNick:        "input_nick",
	LagCounting:      "item_lag_counting",
	LagFinished:      "item_lag_finished",
	Away:             "item_away",
	ChannelModes:     "item_channel_modes",
	BarForeground:    "bar_fg",
}

// String returns the key the token is encoded with.
func (t Token) String() string {
	if t < 0 || int(t) >= len(tokenKeys) {
		return tokenKeys[Foreground]
	}
	return tokenKeys[t]
}

// Tokens returns every token in declaration order.
func Tokens() []Token {
	out := make([]Token, len(tokenKeys))
	for i := range tokenKeys {
		out[i] = Token(i)
	}
	return out
}

// Attribute is a text attribute toggled by IRC formatting codes.
type Attribute int

const (
	// Reset clears colors and attributes.
	Reset Attribute = iota
	Bold
	Reverse
	Italic
	Underline
)

var attrKeys = [...]string{
	Reset:     "reset",
	Bold:      "bold",
	Reverse:   "reverse",
	Italic:    "italic",
	Underline: "underline",
}

func (a Attribute) String() string {
	if a < 0 || int(a) >= len(attrKeys) {
		return attrKeys[Reset]
	}
	return attrKeys[a]
}

// MarkerStart begins every marker. Text from the network must not carry it.
const MarkerStart = markerStart

// Markers are embedded as "\x19[key]" so hosts can find them without
// understanding the label that surrounds them.
const (
	markerStart = '\x19'
	markerOpen  = '['
	markerClose = ']'

	prefixAttr  = "attr:"
	prefixColor = "color:"
	prefixIRC   = "irc"
)

func encode(key string) string {
	return string(markerStart) + string(markerOpen) + key + string(markerClose)
}

// Marker returns the opaque marker for a token. Unknown tokens map to the
// default foreground.
func Marker(t Token) string {
	return encode(t.String())
}

// StatusMarker picks the secure or plain status name marker.
func StatusMarker(secure bool) string {
	if secure {
		return Marker(StatusNameSecure)
	}
	return Marker(StatusName)
}

// Color returns a marker for a named color, as used for nick prefixes.
func Color(name string) string {
	if name == "" {
		name = "default"
	}
	return encode(prefixColor + name)
}

// Attr returns the marker for a text attribute.
func Attr(a Attribute) string {
	return encode(prefixAttr + a.String())
}

// IRC returns a marker for an mIRC palette color pair. A negative fg
// resets the color, a negative bg keeps the current background.
func IRC(fg, bg int) string {
	if fg < 0 {
		return encode(prefixIRC)
	}
	key := prefixIRC + ":" + strconv.Itoa(fg)
	if bg >= 0 {
		key += "," + strconv.Itoa(bg)
	}
	return encode(key)
}

// Segment is a run of text preceded by the marker that styles it. Key is
// empty for text that appears before the first marker.
type Segment struct {
	Key  string
	Text string
}

// Parse splits a label into styled segments. Unterminated markers are kept
// as plain text.
func Parse(label string) []Segment {
	var segments []Segment
	key := ""
	start := 0
	for i := 0; i < len(label); i++ {
		if label[i] != markerStart || i+1 >= len(label) || label[i+1] != markerOpen {
			continue
		}
		end := strings.IndexByte(label[i+2:], markerClose)
		if end < 0 {
			break
		}
		segments = appendText(segments, key, label[start:i])
		key = label[i+2 : i+2+end]
		segments = append(segments, Segment{Key: key})
		i += 2 + end
		start = i + 1
	}
	return appendText(segments, key, label[start:])
}

func appendText(segments []Segment, key, text string) []Segment {
	if text == "" {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].Key == key {
		segments[n-1].Text += text
		return segments
	}
	return append(segments, Segment{Key: key, Text: text})
}

// Plain removes every marker from a label.
func Plain(label string) string {
	if strings.IndexByte(label, markerStart) < 0 {
		return label
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, seg := range Parse(label) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
