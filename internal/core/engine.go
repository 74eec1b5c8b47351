// Package core runs label composition and introspection queries on the
// event loop that owns the session graph and the relay registry.
package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/ircbar/internal/baritem"
	"github.com/vovakirdan/ircbar/internal/info"
	"github.com/vovakirdan/ircbar/internal/loop"
	"github.com/vovakirdan/ircbar/internal/proto"
	"github.com/vovakirdan/ircbar/internal/relay"
	"github.com/vovakirdan/ircbar/internal/session"
	"github.com/vovakirdan/ircbar/internal/state"
	"github.com/vovakirdan/ircbar/internal/style"
)

// ErrStopped is returned once the engine loop has exited.
var ErrStopped = loop.ErrStopped

// Engine is the entry point used by every host adapter.
type Engine interface {
	Run(ctx context.Context)
	Items() []string
	Label(ctx context.Context, item, buffer string) (proto.Label, error)
	Info(ctx context.Context, name, args string) (string, error)
	Infolist(ctx context.Context, name, id, args string) (any, error)
	Describe() []info.Description
	Update(ctx context.Context, fn func(g *session.Graph, r *relay.Registry)) error
}

// Deps are the collaborators an engine reads from.
type Deps struct {
	State   state.Snapshot
	Options baritem.Options
	Words   baritem.Translator
	Log     *zerolog.Logger
	// QueueSize is the task queue length of the loop.
	QueueSize int
}

type engine struct {
	loop  *loop.Loop
	graph *session.Graph
	relay *relay.Service
	items *baritem.Registry
	infos *info.Hub
	opts  baritem.Options
	words baritem.Translator
	log   *zerolog.Logger
}

// NewEngine registers the default bar items and info hooks over d.State.
func NewEngine(d Deps) (Engine, error) {
	logger := d.Log
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if d.State.Graph == nil || d.State.Relay == nil {
		d.State = state.Empty()
	}

	items := baritem.NewRegistry(logger)
	if err := baritem.RegisterDefaults(items); err != nil {
		return nil, fmt.Errorf("register bar items: %w", err)
	}
	svc := relay.NewService(d.State.Relay, logger)
	infos := info.NewHub()
	if err := svc.RegisterInfo(infos); err != nil {
		return nil, fmt.Errorf("register relay info: %w", err)
	}

	return &engine{
		loop:  loop.New(d.QueueSize),
		graph: d.State.Graph,
		relay: svc,
		items: items,
		infos: infos,
		opts:  d.Options,
		words: d.Words,
		log:   logger,
	}, nil
}

func (e *engine) Run(ctx context.Context) {
	e.log.Debug().Strs("items", e.items.Names()).Msg("engine loop started")
	e.loop.Run(ctx)
	e.log.Debug().Msg("engine loop stopped")
}

// Items lists registered bar items. Registration is finished before the
// loop starts, so this does not go through it.
func (e *engine) Items() []string {
	return e.items.Names()
}

func (e *engine) Describe() []info.Description {
	return e.infos.Describe()
}

func (e *engine) Label(ctx context.Context, item, buffer string) (proto.Label, error) {
	out := proto.Label{Name: item, Buffer: buffer}
	var callErr error
	err := e.loop.Do(ctx, func() {
		var buf *session.Buffer
		if buffer != "" {
			buf = e.graph.Buffer(buffer)
			if buf == nil {
				callErr = fmt.Errorf("%q: %w", buffer, ErrUnknownBuffer)
				return
			}
		}
		text, ok, err := e.items.Invoke(item, baritem.Context{
			Buffer:  buf,
			Session: e.graph,
			Options: e.opts,
			Words:   e.words,
		})
		if err != nil {
			callErr = err
			return
		}
		out.Present = ok
		out.Text = text
		out.Plain = style.Plain(text)
	})
	if err != nil {
		return proto.Label{}, err
	}
	if callErr != nil {
		return proto.Label{}, callErr
	}
	return out, nil
}

func (e *engine) Info(ctx context.Context, name, args string) (string, error) {
	var (
		value   string
		callErr error
	)
	if err := e.loop.Do(ctx, func() {
		value, callErr = e.infos.Info(name, args)
	}); err != nil {
		return "", err
	}
	return value, callErr
}

func (e *engine) Infolist(ctx context.Context, name, id, args string) (any, error) {
	var (
		items   any
		callErr error
	)
	if err := e.loop.Do(ctx, func() {
		items, callErr = e.infos.Infolist(name, id, args)
	}); err != nil {
		return nil, err
	}
	return items, callErr
}

// Update runs fn on the loop with write access to the state. It is the
// hook for the layer that owns servers, channels and relay clients.
func (e *engine) Update(ctx context.Context, fn func(g *session.Graph, r *relay.Registry)) error {
	return e.loop.Do(ctx, func() {
		fn(e.graph, e.relay.Registry())
	})
}
