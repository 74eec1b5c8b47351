// Package i18n translates the handful of words bar items show.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	Away   = "away"
	Server = "server"
	Lag    = "Lag"
)

var translations = map[language.Tag]map[string]string{
	language.French: {
		Away:   "absent",
		Server: "serveur",
		Lag:    "Lag",
	},
	language.German: {
		Away:   "abwesend",
		Server: "Server",
		Lag:    "Lag",
	},
	language.Spanish: {
		Away:   "ausente",
		Server: "servidor",
		Lag:    "Retraso",
	},
	language.Italian: {
		Away:   "assente",
		Server: "server",
		Lag:    "Lag",
	},
}

var (
	builder   = newCatalog()
	supported = builder.Languages()
	matcher   = language.NewMatcher(supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, words := range translations {
		for key, text := range words {
			_ = b.SetString(tag, key, text)
		}
	}
	for _, key := range []string{Away, Server, Lag} {
		_ = b.SetString(language.English, key, key)
	}
	return b
}

// Translator looks up words for one locale.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a translator for locale (e.g. "fr", "de-CH"). Unknown or
// malformed locales fall back to English.
func New(locale string) *Translator {
	tag := language.English
	if requested, err := language.Parse(locale); err == nil {
		if _, idx, conf := matcher.Match(requested); conf != language.No {
			tag = supported[idx]
		}
	}
	return &Translator{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// T returns the translation of key, or key itself when none exists.
func (t *Translator) T(key string) string {
	return t.p.Sprintf(key)
}

// Language returns the tag the translator resolved to.
func (t *Translator) Language() language.Tag {
	return t.tag
}
