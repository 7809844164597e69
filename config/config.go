// animforge/config/config.go
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	FFBin            string        `mapstructure:"FFMPEG_BIN"`
	EncodeTimeout    time.Duration `mapstructure:"ENCODE_TIMEOUT"`
	Workers          int           `mapstructure:"WORKERS"`
	FPS              int           `mapstructure:"FPS"`
	Width            int           `mapstructure:"WIDTH"`
	Height           int           `mapstructure:"HEIGHT"`
	Duration         time.Duration `mapstructure:"DURATION"`
	Demo             string        `mapstructure:"DEMO"`
	Format           string        `mapstructure:"FORMAT"`
	Raster           string        `mapstructure:"RASTER"`
	Output           string        `mapstructure:"OUTPUT"`
	ExtraFFArgs      string        `mapstructure:"EXTRA_FF_ARGS"`
	MaxFrameSize     int64         `mapstructure:"MAX_FRAME_SIZE"`
	ThrottleFreeDisk int64         `mapstructure:"THROTTLE_FREEDISK"`
	PreviewEnable    bool          `mapstructure:"PREVIEW_ENABLE"`
	PreviewPort      string        `mapstructure:"PREVIEW_PORT"`
	AuthEnable       bool          `mapstructure:"AUTH_ENABLE"`
	AuthKey          string        `mapstructure:"AUTH_KEY"`
	Verbose          bool          `mapstructure:"VERBOSE"`
}

// stringToDurationHookFunc is a custom Viper hook for parsing Go's duration strings.
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		// We only care about converting strings to time.Duration.
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		// It is a string -> time.Duration. Parse it.
		return time.ParseDuration(data.(string))
	}
}

// stringToByteSizeHookFunc is a custom Viper hook for parsing human-readable size strings.
func stringToByteSizeHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		// We only care about converting strings to int64s for byte sizes.
		if f.Kind() != reflect.String || t.Kind() != reflect.Int64 {
			return data, nil
		}

		var size datasize.ByteSize
		err := size.UnmarshalText([]byte(data.(string)))
		if err != nil {
			// Not a valid size string, let other parsers handle it.
			return data, nil
		}

		return int64(size.Bytes()), nil
	}
}

func Load() (*Config, error) {
	vp := viper.New()

	// Set default values as strings, the hooks will handle them.
	vp.SetDefault("FFMPEG_BIN", "ffmpeg")
	vp.SetDefault("ENCODE_TIMEOUT", "30m")
	vp.SetDefault("WORKERS", 0)
	vp.SetDefault("FPS", 60)
	vp.SetDefault("WIDTH", 2560)
	vp.SetDefault("HEIGHT", 1440)
	vp.SetDefault("DURATION", "5s")
	vp.SetDefault("DEMO", "gradient")
	vp.SetDefault("FORMAT", "mp4")
	vp.SetDefault("RASTER", "none")
	vp.SetDefault("OUTPUT", "")
	vp.SetDefault("EXTRA_FF_ARGS", "")
	vp.SetDefault("MAX_FRAME_SIZE", "50MB")
	vp.SetDefault("THROTTLE_FREEDISK", "200MB")
	vp.SetDefault("PREVIEW_ENABLE", false)
	vp.SetDefault("PREVIEW_PORT", "9160")
	vp.SetDefault("AUTH_ENABLE", false)
	vp.SetDefault("AUTH_KEY", "123456")
	vp.SetDefault("VERBOSE", false)

	// Load from config file
	vp.SetConfigName("animforge_config")
	vp.SetConfigType("yaml")
	vp.AddConfigPath(".")
	vp.AddConfigPath("/etc/animforge/")

	if err := vp.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Load from environment variables
	vp.SetEnvPrefix("ANIMFORGE")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	var cfg Config
	// Unmarshal the config, providing our custom composed hooks.
	// The order matters: the first hook that succeeds is used.
	err := vp.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			stringToDurationHookFunc(),
			stringToByteSizeHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("FPS must be positive, got %d", c.FPS)
	}
	if c.Duration < 0 {
		return fmt.Errorf("DURATION must not be negative, got %s", c.Duration)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("WIDTH and HEIGHT must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// FrameCount returns the number of frames a render of this configuration
// produces: round(duration * rate).
func (c *Config) FrameCount() int {
	return int(c.Duration.Seconds()*float64(c.FPS) + 0.5)
}
