// Package baritem renders the IRC status bar items: short styled labels
// computed on demand from the current session state.
//
// Every composer reads state through the Context it is handed and returns
// either a fresh label or ok == false when the item has nothing to show.
// Composers never modify the session graph.
package baritem

import (
	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/session"
)

// Provider names registered by RegisterDefaults.
const (
	ItemAway         = "away"
	ItemBufferTitle  = "buffer_title"
	ItemBufferPlugin = "buffer_plugin"
	ItemBufferName   = "buffer_name"
	ItemChannel      = "irc_channel"
	ItemLag          = "lag"
	ItemInputPrompt  = "input_prompt"
)

// Options is the read-only configuration view used by composers.
type Options interface {
	Bool(key string) bool
	Int(key string) int
}

// Translator returns localized words.
type Translator interface {
	T(key string) string
}

// Context carries everything a composer may read for one invocation.
// Buffer is the display surface asking for the label and may be nil.
type Context struct {
	Buffer  *session.Buffer
	Session session.Reader
	Options Options
	Words   Translator
}

// binding resolves the server and channel of the context buffer.
func (c Context) binding() (*session.Server, *session.Channel) {
	if c.Buffer == nil || c.Session == nil {
		return nil, nil
	}
	return c.Session.Binding(c.Buffer)
}

// defaultOptions serves contexts built without options.
var defaultOptions Options = config.NewOptions(nil)

func (c Context) options() Options {
	if c.Options == nil {
		return defaultOptions
	}
	return c.Options
}

func (c Context) word(key string) string {
	if c.Words == nil {
		return key
	}
	return c.Words.T(key)
}

// Composer renders one bar item. ok is false when there is nothing to show,
// which is different from an empty label.
type Composer interface {
	Compose(ctx Context) (label string, ok bool)
}

// ComposerFunc adapts a plain function to Composer.
type ComposerFunc func(ctx Context) (string, bool)

// Compose calls f(ctx).
func (f ComposerFunc) Compose(ctx Context) (string, bool) {
	return f(ctx)
}

// RegisterDefaults registers the IRC bar items on r.
func RegisterDefaults(r *Registry) error {
	items := []struct {
		name string
		fn   ComposerFunc
	}{
		{ItemAway, Away},
		{ItemBufferTitle, BufferTitle},
		{ItemBufferPlugin, BufferPlugin},
		{ItemBufferName, BufferName},
		{ItemChannel, ChannelName},
		{ItemLag, Lag},
		{ItemInputPrompt, InputPrompt},
	}
	for _, it := range items {
		if err := r.Register(it.name, it.fn); err != nil {
			return err
		}
	}
	return nil
}
