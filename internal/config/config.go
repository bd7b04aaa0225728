// Package config loads fuzzyface application settings and the style
// settings store.
//
// Application settings (frame size, font, refresh period) come from
// $XDG_CONFIG_HOME/fuzzyface/config.toml, overridden by FUZZYFACE_*
// environment variables and then by command-line flags. The style store
// is a separate TOML file holding the user's watch face style; it is the
// only file fuzzyface writes on its own.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/matzehuels/fuzzyface/pkg/errors"
)

// AppName names the config directory and the environment prefix.
const AppName = "fuzzyface"

// Config holds application configuration.
type Config struct {
	Frame FrameConfig `mapstructure:"frame"`
	Style StoreConfig `mapstructure:"style"`
}

// FrameConfig sizes rendered frames.
type FrameConfig struct {
	Width    int           `mapstructure:"width"`
	Height   int           `mapstructure:"height"`
	FontSize float64       `mapstructure:"font_size"`
	Padding  float64       `mapstructure:"padding"`
	Period   time.Duration `mapstructure:"period"`
}

// StoreConfig locates the style settings store.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Dir returns the fuzzyface config directory.
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName)
	}
	return filepath.Join(os.Getenv("HOME"), ".config", AppName)
}

// DefaultStylePath is where style settings are kept unless configured.
func DefaultStylePath() string {
	return filepath.Join(Dir(), "style.toml")
}

// Load reads configuration from path, or from FUZZYFACE_CONFIG, or from
// the default location. A missing default file is not an error; a missing
// explicit file is. Env var overrides use prefix FUZZYFACE_ with "." as
// "_" (FUZZYFACE_FRAME_WIDTH).
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("frame.width", 454)
	v.SetDefault("frame.height", 454)
	v.SetDefault("frame.font_size", 36.0)
	v.SetDefault("frame.padding", 0.1)
	v.SetDefault("frame.period", "16ms")
	v.SetDefault("style.path", DefaultStylePath())

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("FUZZYFACE_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !stderrors.As(err, &notFound) {
			return Config{}, errors.Wrap(errors.ErrCodeConfig, err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfig, err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	f := c.Frame
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return errors.New(errors.ErrCodeConfig, "frame size %dx%d must be positive", f.Width, f.Height)
	case f.FontSize <= 0:
		return errors.New(errors.ErrCodeConfig, "font size %v must be positive", f.FontSize)
	case f.Padding < 0 || f.Padding > 0.45:
		return errors.New(errors.ErrCodeConfig, "padding %v must be within [0, 0.45]", f.Padding)
	case f.Period <= 0:
		return errors.New(errors.ErrCodeConfig, "frame period %v must be positive", f.Period)
	case c.Style.Path == "":
		return errors.New(errors.ErrCodeConfig, "style store path is empty")
	}
	return nil
}
