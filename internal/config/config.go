// Package config resolves process settings from defaults, an optional .env
// file, CONSULTREADY_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/bytes"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CONSULTREADY"

// Setting keys. Flags use the same names with dashes.
const (
	KeyDomainsDir = "domains_dir"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyHTTPAddr   = "http_addr"
	KeyBodyLimit  = "body_limit"
)

type Settings struct {
	DomainsDir string `mapstructure:"domains_dir"`
	LogLevel   string `mapstructure:"log_level"`
	LogFormat  string `mapstructure:"log_format"`
	HTTPAddr   string `mapstructure:"http_addr"`
	BodyLimit  string `mapstructure:"body_limit"`
}

func defaults(v *viper.Viper) {
	v.SetDefault(KeyDomainsDir, ".consultready/domains")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyBodyLimit, "64K")
}

// Load resolves Settings. envFile is read when it exists; flags that the
// user set override everything else.
func Load(envFile string, flags *pflag.FlagSet) (Settings, error) {
	if envFile != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	defaults(v)

	if flags != nil {
		for _, key := range []string{KeyDomainsDir, KeyLogLevel, KeyLogFormat, KeyHTTPAddr, KeyBodyLimit} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("binding flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings that would fail later at startup.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.DomainsDir) == "" {
		return fmt.Errorf("%s_DOMAINS_DIR must not be empty", EnvPrefix)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	switch strings.ToLower(s.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("%s_LOG_FORMAT must be \"console\" or \"json\", got %q", EnvPrefix, s.LogFormat)
	}
	if _, err := s.BodyLimitBytes(); err != nil {
		return fmt.Errorf("%s_BODY_LIMIT: %w", EnvPrefix, err)
	}
	return nil
}

// BodyLimitBytes parses BodyLimit ("64K", "1M", "512").
func (s Settings) BodyLimitBytes() (int64, error) {
	n, err := bytes.Parse(s.BodyLimit)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %q", s.BodyLimit)
	}
	return n, nil
}
