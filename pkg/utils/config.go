package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Workflow WorkflowConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	MaxConns       int32
	MigrationsPath string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	CacheTTL int // seconds
}

type SessionConfig struct {
	ExpiryHours int
}

type WorkflowConfig struct {
	PenaltyAmount        float64
	DefaultPaymentMethod string
	RateLimitRPS         float64
	RateLimitBurst       int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LATE_RETURN_PENALTY", 100)
	viper.SetDefault("DEFAULT_PAYMENT_METHOD", "gcash")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			Name:           viper.GetString("DB_NAME"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASS"),
			MaxConns:       viper.GetInt32("DB_MAX_CONNS"),
			MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
			CacheTTL: viper.GetInt("REDIS_CACHE_TTL_SECONDS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Workflow: WorkflowConfig{
			PenaltyAmount:        viper.GetFloat64("LATE_RETURN_PENALTY"),
			DefaultPaymentMethod: viper.GetString("DEFAULT_PAYMENT_METHOD"),
			RateLimitRPS:         viper.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst:       viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
