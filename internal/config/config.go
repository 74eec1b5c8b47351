package config

import "time"

// Config holds service settings and the look/network options read by bar items.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	StatePath         string        `mapstructure:"state_path" yaml:"state_path"`
	Locale            string        `mapstructure:"locale" yaml:"locale"`
	MaxMessageBytes   int64         `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	RateLimit         int           `mapstructure:"rate_limit" yaml:"rate_limit"` // ws requests per minute, 0 disables

	// API auth is disabled while APISecret is empty.
	APISecret   string `mapstructure:"api_secret" yaml:"api_secret"`
	APIIssuer   string `mapstructure:"api_issuer" yaml:"api_issuer"`
	APIAudience string `mapstructure:"api_audience" yaml:"api_audience"`

	Look    LookConfig    `mapstructure:"look" yaml:"look"`
	Network NetworkConfig `mapstructure:"network" yaml:"network"`
}

// LookConfig controls how bar items are rendered.
type LookConfig struct {
	ItemAwayMessage         bool   `mapstructure:"item_away_message" yaml:"item_away_message"`
	TopicStripColors        bool   `mapstructure:"topic_strip_colors" yaml:"topic_strip_colors"`
	ItemDisplayServer       string `mapstructure:"item_display_server" yaml:"item_display_server"`
	ItemChannelModes        bool   `mapstructure:"item_channel_modes" yaml:"item_channel_modes"`
	ItemChannelModesHideKey bool   `mapstructure:"item_channel_modes_hide_key" yaml:"item_channel_modes_hide_key"`
	ItemNickModes           bool   `mapstructure:"item_nick_modes" yaml:"item_nick_modes"`
	ItemNickPrefix          bool   `mapstructure:"item_nick_prefix" yaml:"item_nick_prefix"`
}

// NetworkConfig holds network related display thresholds.
type NetworkConfig struct {
	LagMinShow int `mapstructure:"lag_min_show" yaml:"lag_min_show"` // milliseconds
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		StatePath:         "state.yaml",
		Locale:            "en",
		MaxMessageBytes:   1 << 16,
		RateLimit:         600,
		APIIssuer:         "ircbar",
		APIAudience:       "ircbar-api",
		Look: LookConfig{
			ItemAwayMessage:         true,
			TopicStripColors:        false,
			ItemDisplayServer:       DisplayServerPluginName,
			ItemChannelModes:        true,
			ItemChannelModesHideKey: false,
			ItemNickModes:           true,
			ItemNickPrefix:          true,
		},
		Network: NetworkConfig{
			LagMinShow: 500,
		},
	}
}

// UpdateFrom overwrites non-zero service values from other config into receiver.
// Look and network options are left alone; they are owned by the config file.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.StatePath != "" {
		c.StatePath = other.StatePath
	}
	if other.Locale != "" {
		c.Locale = other.Locale
	}
	if other.MaxMessageBytes != 0 {
		c.MaxMessageBytes = other.MaxMessageBytes
	}
	if other.RateLimit != 0 {
		c.RateLimit = other.RateLimit
	}
	if other.APISecret != "" {
		c.APISecret = other.APISecret
	}
}
