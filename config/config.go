package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log     Logger   `mapstructure:"logger"`
	DB      Database `mapstructure:"database"`
	API     API      `mapstructure:"api"`
	Auth    Auth     `mapstructure:"auth"`
	Journal Journal  `mapstructure:"journal"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

type API struct {
	Port                int `mapstructure:"port"`
	MaxRequestPerSecond int `mapstructure:"max_request_per_second"`
	BurstRequest        int `mapstructure:"burst_request"`
}

// Auth configures the external userinfo collaborator that turns a bearer
// token into an authenticated email and display name.
type Auth struct {
	UserInfoURL     string        `mapstructure:"user_info_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type Journal struct {
	WorksheetRowCapacity int    `mapstructure:"worksheet_row_capacity"`
	WorksheetColCapacity int    `mapstructure:"worksheet_col_capacity"`
	ChartDir             string `mapstructure:"chart_dir"`
	MaxChartSizeBytes    int64  `mapstructure:"max_chart_size_bytes"`
}

func Load() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Journal.WorksheetRowCapacity <= 0 {
		c.Journal.WorksheetRowCapacity = 100
	}
	if c.Journal.WorksheetColCapacity <= 0 {
		c.Journal.WorksheetColCapacity = 20
	}
	if c.Journal.ChartDir == "" {
		c.Journal.ChartDir = "charts"
	}
	if c.Journal.MaxChartSizeBytes <= 0 {
		c.Journal.MaxChartSizeBytes = 5 << 20
	}
	if c.Auth.Timeout <= 0 {
		c.Auth.Timeout = 10 * time.Second
	}
	if c.Auth.SessionTTL <= 0 {
		c.Auth.SessionTTL = 5 * time.Minute
	}
	if c.Auth.CleanupInterval <= 0 {
		c.Auth.CleanupInterval = 10 * time.Minute
	}
	if c.API.MaxRequestPerSecond <= 0 {
		c.API.MaxRequestPerSecond = 10
	}
	if c.API.BurstRequest <= 0 {
		c.API.BurstRequest = 30
	}
}
