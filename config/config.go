package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Schedule  ScheduleConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Port              string
	Env               string
	Timezone          string
	CORSAllowedOrigin string

	location *time.Location
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// ScheduleConfig tunes how appointments for the same dentist are checked for collisions.
type ScheduleConfig struct {
	LockTTL time.Duration
	// AllowBackToBack lets an appointment start exactly when another one ends.
	AllowBackToBack bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type LogConfig struct {
	Level string
	File  string
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("SCHEDULE_ALLOW_BACK_TO_BACK", false)
	viper.SetDefault("RATE_LIMIT_RPS", 1)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; containers usually pass plain environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	lockTTL, err := time.ParseDuration(viper.GetString("SCHEDULE_LOCK_TTL"))
	if err != nil {
		lockTTL = 10 * time.Second
	}

	// An unknown zone would shift the working hours and break the DB session, so refuse to start.
	timezone := viper.GetString("APP_TIMEZONE")
	location := time.Local
	dbTimeZone := "UTC"
	if timezone != "" {
		location, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", timezone, err)
		}
		dbTimeZone = timezone
	}

	config := &Config{
		App: AppConfig{
			Port:              viper.GetString("APP_PORT"),
			Env:               viper.GetString("APP_ENV"),
			Timezone:          timezone,
			CORSAllowedOrigin: viper.GetString("CORS_ALLOWED_ORIGIN"),
			location:          location,
		},
		DB: DBConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSLMODE"),
			TimeZone:    dbTimeZone,
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Schedule: ScheduleConfig{
			LockTTL:         lockTTL,
			AllowBackToBack: viper.GetBool("SCHEDULE_ALLOW_BACK_TO_BACK"),
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
			File:  viper.GetString("LOG_FILE"),
		},
	}

	return config, nil
}

// Location returns the clinic's time zone as resolved by LoadConfig, or the
// host zone when APP_TIMEZONE is unset.
func (c AppConfig) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}
