package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Polymarket Polymarket `mapstructure:"polymarket"`
	Logger     Logger     `mapstructure:"logger"`
	Server     Server     `mapstructure:"server"`
	Database   Database   `mapstructure:"database"`
}

// Polymarket holds the endpoints and limits used to talk to the Polymarket APIs.
type Polymarket struct {
	ArchiveURL     string        `mapstructure:"archive_url"`
	EventsURL      string        `mapstructure:"events_url"`
	ClobURL        string        `mapstructure:"clob_url"`
	TradesURL      string        `mapstructure:"trades_url"`
	ArchiveTimeout time.Duration `mapstructure:"archive_timeout"`
	EventsTimeout  time.Duration `mapstructure:"events_timeout"`
	ClobTimeout    time.Duration `mapstructure:"clob_timeout"`
	TradesTimeout  time.Duration `mapstructure:"trades_timeout"`
	LookupOrder    []string      `mapstructure:"lookup_order"`
	TradeLimit     int           `mapstructure:"trade_limit"`
	RateLimit      float64       `mapstructure:"rate_limit"` // requests per second, 0 disables pacing
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
}

// Server holds the configuration for the archive viewer.
type Server struct {
	Port int `mapstructure:"port"`
}

// Database holds the configuration for the trade archive.
// An empty DSN disables archiving.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults cover every key.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yml")

	// Allow environment variables to override config file
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("polymarket.archive_url", "https://strapi-matic.poly.market/events")
	v.SetDefault("polymarket.events_url", "https://gamma-api.polymarket.com/events")
	v.SetDefault("polymarket.clob_url", "https://clob.polymarket.com/simplified-markets")
	v.SetDefault("polymarket.trades_url", "https://data-api.polymarket.com/trades")
	v.SetDefault("polymarket.archive_timeout", 5*time.Second)
	v.SetDefault("polymarket.events_timeout", 5*time.Second)
	v.SetDefault("polymarket.clob_timeout", 10*time.Second)
	v.SetDefault("polymarket.trades_timeout", 10*time.Second)
	v.SetDefault("polymarket.lookup_order", []string{"archive", "events", "clob"})
	v.SetDefault("polymarket.trade_limit", 50)
	v.SetDefault("polymarket.rate_limit", 0)
	v.SetDefault("polymarket.rate_limit_burst", 1)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("server.port", 8080)
	v.SetDefault("database.dsn", "")
}
