// Package irccolor handles mIRC formatting codes embedded in IRC text.
package irccolor

import (
	"strings"

	"github.com/vovakirdan/ircbar/internal/style"
)

// Formatting control bytes.
const (
	Bold          = '\x02'
	Color         = '\x03'
	HexColor      = '\x04'
	Reset         = '\x0f'
	Monospace     = '\x11'
	Reverse       = '\x16'
	Italic        = '\x1d'
	Strikethrough = '\x1e'
	Underline     = '\x1f'
)

func isCode(c byte) bool {
	switch c {
	case Bold, Color, HexColor, Reset, Monospace, Reverse, Italic, Strikethrough, Underline:
		return true
	}
	return false
}

// HasCodes reports whether s carries any formatting code.
func HasCodes(s string) bool {
	for i := 0; i < len(s); i++ {
		if isCode(s[i]) {
			return true
		}
	}
	return false
}

// Strip removes every formatting code from s.
func Strip(s string) string {
	return Decode(s, false)
}

// Decode replaces formatting codes with style markers when keep is true, or
// drops them when it is false. A style.MarkerStart byte is always dropped so
// the text cannot forge markers. Other text is returned unchanged.
func Decode(s string, keep bool) string {
	if !HasCodes(s) && strings.IndexByte(s, style.MarkerStart) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case Bold:
			if keep {
				b.WriteString(style.Attr(style.Bold))
			}
		case Reset:
			if keep {
				b.WriteString(style.Attr(style.Reset))
			}
		case Reverse:
			if keep {
				b.WriteString(style.Attr(style.Reverse))
			}
		case Italic:
			if keep {
				b.WriteString(style.Attr(style.Italic))
			}
		case Underline:
			if keep {
				b.WriteString(style.Attr(style.Underline))
			}
		case Monospace, Strikethrough:
			// no terminal equivalent
		case Color:
			fg, bg, n := parseColor(s[i+1:])
			i += n
			if keep {
				b.WriteString(style.IRC(fg, bg))
			}
		case HexColor:
			i += skipHex(s[i+1:])
		case style.MarkerStart:
			// would be read as a marker
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// parseColor reads "FG[,BG]" with up to two digits each and returns the
// consumed length. A missing FG yields -1, meaning reset color.
func parseColor(s string) (fg, bg, n int) {
	fg, n = readNumber(s, 2)
	if n == 0 {
		return -1, -1, 0
	}
	bg = -1
	if n < len(s) && s[n] == ',' {
		if v, m := readNumber(s[n+1:], 2); m > 0 {
			bg = v
			n += 1 + m
		}
	}
	return fg, bg, n
}

func readNumber(s string, max int) (int, int) {
	v, n := 0, 0
	for n < len(s) && n < max && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int(s[n]-'0')
		n++
	}
	return v, n
}

// skipHex consumes "RRGGBB[,RRGGBB]" after a hex color code.
func skipHex(s string) int {
	n := hexRun(s)
	if n != 6 {
		return 0
	}
	if n < len(s) && s[n] == ',' && hexRun(s[n+1:]) == 6 {
		n += 7
	}
	return n
}

func hexRun(s string) int {
	n := 0
	for n < len(s) && n < 6 && isHex(s[n]) {
		n++
	}
	return n
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
