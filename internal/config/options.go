package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Option keys read by bar items.
const (
	OptItemAwayMessage         = "look.item_away_message"
	OptTopicStripColors        = "look.topic_strip_colors"
	OptItemDisplayServer       = "look.item_display_server"
	OptItemChannelModes        = "look.item_channel_modes"
	OptItemChannelModesHideKey = "look.item_channel_modes_hide_key"
	OptItemNickModes           = "look.item_nick_modes"
	OptItemNickPrefix          = "look.item_nick_prefix"
	OptLagMinShow              = "network.lag_min_show"
)

// Values of look.item_display_server.
const (
	DisplayServerPlugin = iota
	DisplayServerName
)

// Symbolic names accepted for look.item_display_server.
const (
	DisplayServerPluginName = "buffer_plugin"
	DisplayServerNameName   = "buffer_name"
)

var enumValues = map[string]map[string]int{
	OptItemDisplayServer: {
		DisplayServerPluginName: DisplayServerPlugin,
		DisplayServerNameName:   DisplayServerName,
	},
}

// setOptionDefaults registers the option defaults on v.
func setOptionDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault(OptItemAwayMessage, cfg.Look.ItemAwayMessage)
	v.SetDefault(OptTopicStripColors, cfg.Look.TopicStripColors)
	v.SetDefault(OptItemDisplayServer, cfg.Look.ItemDisplayServer)
	v.SetDefault(OptItemChannelModes, cfg.Look.ItemChannelModes)
	v.SetDefault(OptItemChannelModesHideKey, cfg.Look.ItemChannelModesHideKey)
	v.SetDefault(OptItemNickModes, cfg.Look.ItemNickModes)
	v.SetDefault(OptItemNickPrefix, cfg.Look.ItemNickPrefix)
	v.SetDefault(OptLagMinShow, cfg.Network.LagMinShow)
}

// Options reads look and network options on every call, so values changed
// through Set or a config reload are seen by the next redraw.
type Options struct {
	v *viper.Viper
}

// NewOptions wraps v. A nil v gets a fresh instance carrying the defaults.
func NewOptions(v *viper.Viper) *Options {
	if v == nil {
		v = viper.New()
		setOptionDefaults(v, Default())
	}
	return &Options{v: v}
}

// Bool returns a boolean option. Unknown keys read as false.
func (o *Options) Bool(key string) bool {
	return o.v.GetBool(key)
}

// Int returns an integer option. Enum options accept their symbolic names;
// unknown keys and unparsable values read as 0.
func (o *Options) Int(key string) int {
	if raw, ok := o.v.Get(key).(string); ok {
		if names, isEnum := enumValues[key]; isEnum {
			if n, found := names[strings.ToLower(strings.TrimSpace(raw))]; found {
				return n
			}
		}
	}
	return o.v.GetInt(key)
}

// Set overrides an option value at runtime.
func (o *Options) Set(key string, value any) {
	o.v.Set(key, value)
}
