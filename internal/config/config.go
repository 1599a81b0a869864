package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // "mysql" or "sqlite"
	DSN    string `mapstructure:"dsn"`
}

type AdminConfig struct {
	// Token guards the admin routes; empty leaves them open
	Token string `mapstructure:"token"`
}

type SweeperConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"` // cron spec, e.g. "@every 1m"
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Sweeper  SweeperConfig  `mapstructure:"sweeper"`
	Seed     bool           `mapstructure:"seed"`
}

// Load reads configuration from the given file, with AUCTION_-prefixed
// environment variables overriding file values. A missing file at the default
// path is not an error; all settings have workable defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:auction.db")
	v.SetDefault("admin.token", "")
	v.SetDefault("sweeper.enabled", true)
	v.SetDefault("sweeper.schedule", "@every 1m")
	v.SetDefault("seed", false)

	v.SetEnvPrefix("AUCTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "read config %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "stat config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &c, nil
}
