package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"instabug_bridge/contract"
)

// Config holds bridge configuration.
type Config struct {
	SDK     SDKConfig
	Log     LogConfig
	Network NetworkConfig
	Strings StringsConfig
	Screens ScreensConfig
	Native  NativeConfig
}

// SDKConfig holds the values passed to the native SDK on start.
type SDKConfig struct {
	Token            string
	InvocationEvents []string `mapstructure:"invocation_events"`
	Platform         string
	Locale           string
}

// LogConfig controls the bridge's own logger, not the SDK's debug logs.
type LogConfig struct {
	Level string
	Path  string
}

type NetworkConfig struct {
	Enabled bool
}

// StringsConfig points at a directory of per-locale string override files.
type StringsConfig struct {
	Dir string
}

type ScreensConfig struct {
	FlushSuperseded bool `mapstructure:"flush_superseded"`
}

type NativeConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sdk.token", "")
	v.SetDefault("sdk.invocation_events", []string{string(contract.InvocationEventShake)})
	v.SetDefault("sdk.platform", string(contract.PlatformAndroid))
	v.SetDefault("sdk.locale", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
	v.SetDefault("network.enabled", true)
	v.SetDefault("strings.dir", "")
	v.SetDefault("screens.flush_superseded", false)
	v.SetDefault("native.request_timeout", 5*time.Second)
}

// Defaults returns the configuration used when no file or env override is
// present.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix INSTABUG_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	cfgPath := os.Getenv("INSTABUG_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "instabug"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("INSTABUG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; the default location is optional.
		if _, notFound := err.(viper.ConfigFileNotFoundError); cfgPath != "" || !notFound {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values Load cannot coerce.
func (c Config) Validate() error {
	switch contract.Platform(c.SDK.Platform) {
	case contract.PlatformAndroid, contract.PlatformIOS:
	default:
		return fmt.Errorf("config: unknown platform %q", c.SDK.Platform)
	}
	if c.Native.RequestTimeout <= 0 {
		return fmt.Errorf("config: native.request_timeout must be positive, got %s", c.Native.RequestTimeout)
	}
	return nil
}

// Platform returns the configured native platform.
func (c Config) Platform() contract.Platform {
	return contract.Platform(c.SDK.Platform)
}

// InvocationEvents returns the configured events as contract values.
func (c Config) InvocationEvents() []contract.InvocationEvent {
	out := make([]contract.InvocationEvent, 0, len(c.SDK.InvocationEvents))
	for _, e := range c.SDK.InvocationEvents {
		out = append(out, contract.InvocationEvent(e))
	}
	return out
}
