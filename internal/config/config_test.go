package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	logger := zerolog.Nop()

	cfg, opts, resolved, err := Load(&logger, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.Network.LagMinShow != 500 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	if !opts.Bool(OptItemAwayMessage) {
		t.Errorf("%s default should be true", OptItemAwayMessage)
	}
	if opts.Bool(OptTopicStripColors) {
		t.Errorf("%s default should be false", OptTopicStripColors)
	}
	if got := opts.Int(OptItemDisplayServer); got != DisplayServerPlugin {
		t.Errorf("%s = %d, want %d", OptItemDisplayServer, got, DisplayServerPlugin)
	}
	if got := opts.Int(OptLagMinShow); got != 500 {
		t.Errorf("%s = %d, want 500", OptLagMinShow, got)
	}
}

func TestLoadReadsFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
addr: ":9090"
look:
  item_display_server: buffer_name
  item_channel_modes_hide_key: true
network:
  lag_min_show: 0
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, opts, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if got := opts.Int(OptItemDisplayServer); got != DisplayServerName {
		t.Errorf("%s = %d, want %d", OptItemDisplayServer, got, DisplayServerName)
	}
	if !opts.Bool(OptItemChannelModesHideKey) {
		t.Errorf("%s should be true", OptItemChannelModesHideKey)
	}
	if got := opts.Int(OptLagMinShow); got != 0 {
		t.Errorf("%s = %d, want 0", OptLagMinShow, got)
	}
	// untouched options keep their defaults
	if !opts.Bool(OptItemNickPrefix) {
		t.Errorf("%s default lost", OptItemNickPrefix)
	}
}

func TestOptionsUnknownKeysAreZero(t *testing.T) {
	opts := NewOptions(nil)
	if opts.Bool("look.does_not_exist") {
		t.Errorf("unknown bool key should be false")
	}
	if opts.Int("network.does_not_exist") != 0 {
		t.Errorf("unknown int key should be 0")
	}
}

func TestOptionsSetAndEnumValues(t *testing.T) {
	opts := NewOptions(nil)

	tests := []struct {
		value any
		want  int
	}{
		{"buffer_name", DisplayServerName},
		{"BUFFER_PLUGIN", DisplayServerPlugin},
		{1, DisplayServerName},
		{"bogus", 0},
	}
	for _, tc := range tests {
		opts.Set(OptItemDisplayServer, tc.value)
		if got := opts.Int(OptItemDisplayServer); got != tc.want {
			t.Errorf("Int(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestUpdateFrom(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":1", LogLevel: "debug"})
	if cfg.Addr != ":1" || cfg.LogLevel != "debug" {
		t.Fatalf("UpdateFrom did not apply overrides: %+v", cfg)
	}
	if cfg.StatePath != "state.yaml" {
		t.Fatalf("UpdateFrom clobbered StatePath: %q", cfg.StatePath)
	}
}
