package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type RateAPI struct {
	BaseURL string `mapstructure:"base_url"`
}

type Rates struct {
	Base         string  `mapstructure:"base"`
	Target       string  `mapstructure:"target"`
	MinPlausible float64 `mapstructure:"min_plausible"`
	MaxPlausible float64 `mapstructure:"max_plausible"`
}

type Retry struct {
	MaxAttempts int `mapstructure:"max_attempts"`
	BaseDelayMs int `mapstructure:"base_delay_ms"`
}

type Refresh struct {
	// CronSecret guards the HTTP cron-trigger endpoint.
	CronSecret string `mapstructure:"cron_secret"`
	// IntervalMinutes drives the in-process scheduler; 0 disables it
	// (an external cron then hits the update endpoint instead).
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type Display struct {
	StaleAfterHours int     `mapstructure:"stale_after_hours"`
	FallbackRate    float64 `mapstructure:"fallback_rate"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	RateAPI    RateAPI    `mapstructure:"rate_api"`
	Rates      Rates      `mapstructure:"rates"`
	Retry      Retry      `mapstructure:"retry"`
	Refresh    Refresh    `mapstructure:"refresh"`
	Auth       Auth       `mapstructure:"auth"`
	Display    Display    `mapstructure:"display"`
	Logging    Logging    `mapstructure:"logging"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional outside local development
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("rate_api.base_url", "https://latest.currency-api.pages.dev")
	viper.SetDefault("rates.base", "USD")
	viper.SetDefault("rates.target", "TRY")
	viper.SetDefault("rates.min_plausible", 20)
	viper.SetDefault("rates.max_plausible", 50)
	viper.SetDefault("retry.max_attempts", 3)
	viper.SetDefault("retry.base_delay_ms", 1000)
	viper.SetDefault("refresh.interval_minutes", 1440)
	viper.SetDefault("display.stale_after_hours", 24)
	viper.SetDefault("display.fallback_rate", 34.50)
	viper.SetDefault("logging.level", "info")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// secrets are env-only
	_ = viper.BindEnv("refresh.cron_secret", "CRON_SECRET")
	_ = viper.BindEnv("auth.jwt_secret", "JWT_SECRET")

	_ = viper.BindEnv("rate_api.base_url", "RATE_API_BASE_URL")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
