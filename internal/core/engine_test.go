package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/ircbar/internal/baritem"
	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/i18n"
	"github.com/vovakirdan/ircbar/internal/info"
	"github.com/vovakirdan/ircbar/internal/relay"
	"github.com/vovakirdan/ircbar/internal/session"
	"github.com/vovakirdan/ircbar/internal/state"
)

const testState = `
servers:
  - name: libera
    away: true
    away_message: Lunch
    nick: alice
    channels:
      - name: "#go"
        modes: "+nt"
        nicks:
          - name: alice
            prefix: "@"
            prefix_color: lightgreen
buffers:
  - name: weechat
  - name: libera.#go
    plugin: irc
    server: libera
    channel: "#go"
relay_clients:
  - id: c2
    status: connected
  - id: c1
    status: disconnected
`

func startEngine(t *testing.T) (Engine, context.Context) {
	t.Helper()

	snap, err := state.Parse([]byte(testState), time.Now())
	if err != nil {
		t.Fatalf("parse state: %v", err)
	}
	eng, err := NewEngine(Deps{
		State:     snap,
		Options:   config.NewOptions(nil),
		Words:     i18n.New("en"),
		QueueSize: 4,
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go eng.Run(runCtx)

	ctx, cancelCall := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancelCall)
	return eng, ctx
}

func TestEngineLabel(t *testing.T) {
	eng, ctx := startEngine(t)

	lbl, err := eng.Label(ctx, baritem.ItemAway, "irc.libera.#go")
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	if !lbl.Present || lbl.Plain != "Lunch" {
		t.Fatalf("unexpected away label: %+v", lbl)
	}
	if lbl.Text == lbl.Plain {
		t.Fatalf("styled text must carry markers: %q", lbl.Text)
	}

	lbl, err = eng.Label(ctx, baritem.ItemInputPrompt, "libera.#go")
	if err != nil {
		t.Fatalf("label: %v", err)
	}
	if lbl.Plain != "@alice" {
		t.Fatalf("unexpected prompt: %q", lbl.Plain)
	}
}

func TestEngineLabelNoOutput(t *testing.T) {
	eng, ctx := startEngine(t)

	for _, buffer := range []string{"", "weechat"} {
		lbl, err := eng.Label(ctx, baritem.ItemLag, buffer)
		if err != nil {
			t.Fatalf("label on %q: %v", buffer, err)
		}
		if lbl.Present || lbl.Text != "" {
			t.Fatalf("expected no output on %q, got %+v", buffer, lbl)
		}
	}
}

func TestEngineLabelErrors(t *testing.T) {
	eng, ctx := startEngine(t)

	_, err := eng.Label(ctx, "nope", "weechat")
	if ce := Classify(err); ce == nil || ce.Code != ErrCodeUnknownItem {
		t.Fatalf("expected unknown item, got %v", err)
	}

	_, err = eng.Label(ctx, baritem.ItemAway, "irc.missing")
	if !errors.Is(err, ErrUnknownBuffer) {
		t.Fatalf("expected ErrUnknownBuffer, got %v", err)
	}
}

func TestEngineInfo(t *testing.T) {
	eng, ctx := startEngine(t)

	n, err := eng.Info(ctx, relay.InfoClientCount, "connected")
	if err != nil || n != "1" {
		t.Fatalf("count connected: %q, %v", n, err)
	}

	_, err = eng.Info(ctx, relay.InfoClientCount, "bogus-status")
	if ce := Classify(err); ce.Code != ErrCodeInvalidFilter {
		t.Fatalf("expected invalid filter, got %v", err)
	}

	_, err = eng.Info(ctx, "missing", "")
	if !errors.Is(err, info.ErrUnknownInfo) {
		t.Fatalf("expected ErrUnknownInfo, got %v", err)
	}

	list, err := eng.Infolist(ctx, relay.InfolistRelay, "", "")
	if err != nil {
		t.Fatalf("infolist: %v", err)
	}
	recs := list.([]relay.Record)
	if len(recs) != 2 || recs[0].ID != "c2" || recs[1].ID != "c1" {
		t.Fatalf("unexpected records: %+v", recs)
	}

	_, err = eng.Infolist(ctx, relay.InfolistRelay, "gone", "")
	if ce := Classify(err); ce.Code != ErrCodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEngineUpdate(t *testing.T) {
	eng, ctx := startEngine(t)

	err := eng.Update(ctx, func(g *session.Graph, r *relay.Registry) {
		g.Server("libera").IsAway = false
		r.Add(&relay.Client{ID: "c3", Status: relay.StatusConnected})
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	lbl, err := eng.Label(ctx, baritem.ItemAway, "irc.libera.#go")
	if err != nil || lbl.Present {
		t.Fatalf("away must be gone: %+v, %v", lbl, err)
	}
	n, err := eng.Info(ctx, relay.InfoClientCount, "")
	if err != nil || n != "3" {
		t.Fatalf("count: %q, %v", n, err)
	}
}

func TestEngineStopped(t *testing.T) {
	snap := state.Empty()
	eng, err := NewEngine(Deps{State: snap})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		eng.Run(runCtx)
		close(done)
	}()
	cancel()
	<-done

	_, err = eng.Info(context.Background(), relay.InfoClientCount, "")
	if ce := Classify(err); ce == nil || ce.Code != ErrCodeUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	if Classify(nil) != nil {
		t.Fatal("nil error must classify to nil")
	}
	if ce := Classify(errors.New("boom")); ce.Code != ErrCodeInternal || ce.Message != "internal error" {
		t.Fatalf("unexpected classification: %+v", ce)
	}
	own := coreError(ErrCodeRateLimited, "slow down")
	if ce := Classify(own); ce != own {
		t.Fatalf("CoreError must pass through, got %+v", ce)
	}
}
