package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/ircbar/internal/config"
	"github.com/vovakirdan/ircbar/internal/core"
	"github.com/vovakirdan/ircbar/internal/i18n"
	"github.com/vovakirdan/ircbar/internal/state"
)

const testState = `
servers:
  - name: libera
    away: true
    away_message: Lunch
    lag: 1500
    nick: alice
    nick_modes: i
    channels:
      - name: "#go"
        modes: "+nt"
        nicks:
          - name: alice
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
    status: auth_failed
`

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second
	cfg.ShutdownTimeout = time.Second
	return cfg
}

// startTestServer runs an engine over testState behind an httptest server.
func startTestServer(t *testing.T, cfg config.Config) *httptest.Server {
	t.Helper()

	snap, err := state.Parse([]byte(testState), time.Now())
	if err != nil {
		t.Fatalf("parse state: %v", err)
	}
	eng, err := core.NewEngine(core.Deps{
		State:     snap,
		Options:   config.NewOptions(nil),
		Words:     i18n.New("en"),
		QueueSize: 8,
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go eng.Run(ctx)

	disabledLogger := zerolog.New(nil)
	server := NewServer(eng, &cfg, &disabledLogger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts
}
