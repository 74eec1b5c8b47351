package style

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme maps marker keys to foreground colors.
type Theme map[string]lipgloss.TerminalColor

// namedColors follows the 16 color names used in IRC client configs.
var namedColors = map[string]int{
	"black":        0,
	"red":          1,
	"green":        2,
	"brown":        3,
	"blue":         4,
	"magenta":      5,
	"cyan":         6,
	"gray":         7,
	"darkgray":     8,
	"lightred":     9,
	"lightgreen":   10,
	"yellow":       11,
	"lightblue":    12,
	"lightmagenta": 13,
	"lightcyan":    14,
	"white":        15,
}

// mircPalette maps mIRC color numbers onto ANSI indexes.
var mircPalette = [16]int{15, 0, 4, 2, 9, 1, 5, 3, 11, 10, 6, 14, 12, 13, 8, 7}

func ansiColor(n int) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(n))
}

// NamedColor resolves a color name to a terminal color. "default" and
// unknown names resolve to no color.
func NamedColor(name string) lipgloss.TerminalColor {
	if n, ok := namedColors[strings.ToLower(name)]; ok {
		return ansiColor(n)
	}
	return lipgloss.NoColor{}
}

// DefaultTheme returns the stock colors for bar item tokens.
func DefaultTheme() Theme {
	return Theme{
		Delimiter.String():        NamedColor("cyan"),
		Foreground.String():       lipgloss.NoColor{},
		StatusName.String():       NamedColor("white"),
		StatusNameSecure.String(): NamedColor("lightgreen"),
		InputNick.String():        NamedColor("lightcyan"),
		LagCounting.String():      lipgloss.NoColor{},
		LagFinished.String():      NamedColor("yellow"),
		Away.String():             NamedColor("yellow"),
		ChannelModes.String():     lipgloss.NoColor{},
		BarForeground.String():    lipgloss.NoColor{},
	}
}

// Renderer turns labels carrying markers into terminal output.
type Renderer struct {
	r     *lipgloss.Renderer
	theme Theme
}

// NoColor reports whether color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// NewRenderer builds a renderer writing for w. When noColor is set the
// ASCII profile is forced and Render degrades to Plain.
func NewRenderer(w io.Writer, theme Theme, noColor bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{r: r, theme: theme}
}

type state struct {
	fg        lipgloss.TerminalColor
	bg        lipgloss.TerminalColor
	bold      bool
	reverse   bool
	italic    bool
	underline bool
}

func (s *state) apply(theme Theme, key string) {
	switch {
	case strings.HasPrefix(key, prefixAttr):
		switch key[len(prefixAttr):] {
		case "bold":
			s.bold = !s.bold
		case "reverse":
			s.reverse = !s.reverse
		case "italic":
			s.italic = !s.italic
		case "underline":
			s.underline = !s.underline
		default:
			*s = state{}
		}
	case strings.HasPrefix(key, prefixColor):
		s.fg = NamedColor(key[len(prefixColor):])
	case key == prefixIRC:
		s.fg, s.bg = nil, nil
	case strings.HasPrefix(key, prefixIRC+":"):
		fg, bg, hasBG := strings.Cut(key[len(prefixIRC)+1:], ",")
		if n, err := strconv.Atoi(fg); err == nil {
			s.fg = ansiColor(mircPalette[n%16])
		}
		if hasBG {
			if n, err := strconv.Atoi(bg); err == nil {
				s.bg = ansiColor(mircPalette[n%16])
			}
		}
	default:
		if c, ok := theme[key]; ok {
			s.fg = c
		} else {
			s.fg = nil
		}
	}
}

func (s *state) style(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle().
		Bold(s.bold).
		Reverse(s.reverse).
		Italic(s.italic).
		Underline(s.underline)
	if s.fg != nil {
		st = st.Foreground(s.fg)
	}
	if s.bg != nil {
		st = st.Background(s.bg)
	}
	return st
}

// Render converts markers into ANSI sequences for the renderer's profile.
func (r *Renderer) Render(label string) string {
	if r.r.ColorProfile() == termenv.Ascii {
		return Plain(label)
	}
	var (
		b  strings.Builder
		st state
	)
	for _, seg := range Parse(label) {
		if seg.Key != "" {
			st.apply(r.theme, seg.Key)
		}
		if seg.Text == "" {
			continue
		}
		b.WriteString(st.style(r.r).Render(seg.Text))
	}
	return b.String()
}
