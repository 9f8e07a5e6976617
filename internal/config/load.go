package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable, e.g. TODO_SERVER_PORT.
	EnvPrefix = "TODO"

	// ConfigFileEnv names an explicit config file, bypassing the search paths.
	ConfigFileEnv = "TODO_CONFIG_FILE"
)

// Loader reads configuration from defaults, an optional config file and
// environment variables, in increasing order of precedence.
type Loader struct {
	v        *viper.Viper
	validate *validator.Validate
}

// NewLoader creates a Loader. When configFile is empty, a file named
// config.{yaml,toml,json} is looked up in "." and "./config".
func NewLoader(configFile string) *Loader {
	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{
		v:        v,
		validate: validator.New(),
	}
}

// Load reads and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return l.decode()
}

// ConfigFileUsed returns the path of the config file that was read, or ""
// when configuration comes only from defaults and the environment.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Watch re-reads the config file whenever it changes and passes each valid
// result to onChange. Invalid edits are logged and skipped. It reports
// whether watching started, which requires a config file to be in use.
func (l *Loader) Watch(onChange func(*Config)) bool {
	if l.ConfigFileUsed() == "" {
		return false
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		cfg, err := l.decode()
		if err != nil {
			slog.Warn("ignoring invalid config change",
				"file", e.Name,
				"error", err)
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()

	return true
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := l.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// NewEnvLoader creates a Loader for the config file named by TODO_CONFIG_FILE,
// or for the default search paths when it is unset.
func NewEnvLoader() *Loader {
	return NewLoader(os.Getenv(ConfigFileEnv))
}
