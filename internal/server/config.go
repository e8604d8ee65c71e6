package server

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the HTTP API.
type Config struct {
	Listen    string `mapstructure:"listen"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	// Tolerance is the default equivalence tolerance in dollars when a
	// request does not specify one.
	Tolerance float64 `mapstructure:"tolerance"`
}

// LoadConfig reads server settings from an optional file, with ROTHCALC_*
// environment variables overriding file values and defaults filling the rest.
// An empty path skips the file and uses env/defaults only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("listen", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("tolerance", 1.0)

	v.SetEnvPrefix("ROTHCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading server config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode server config: %w", err)
	}
	return &config, nil
}
