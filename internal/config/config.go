package config

import (
	"github.com/spf13/viper"

	"github.com/golden-fur/grooming-records/internal/database"
)

// ServiceConfig holds all configuration for the grooming records
// service. Every value can be overridden through a GROOMING_-prefixed
// environment variable.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	MigrationsPath string
	AllowedOrigins []string
	DB             database.Config
}

// Load reads configuration from environment variables with sensible
// defaults for a single-workstation deployment.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("GROOMING")
	v.AutomaticEnv()

	v.SetDefault("PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("ALLOWED_ORIGINS", []string{})

	v.SetDefault("DB_DRIVER", database.DriverSQLite)
	v.SetDefault("SQLITE_PATH", "golden-fur.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "golden_fur")
	v.SetDefault("DB_SSLMODE", "disable")

	return &ServiceConfig{
		Port:           v.GetString("PORT"),
		AppEnv:         v.GetString("APP_ENV"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		AllowedOrigins: v.GetStringSlice("ALLOWED_ORIGINS"),
		DB: database.Config{
			Driver:   v.GetString("DB_DRIVER"),
			Path:     v.GetString("SQLITE_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
	}, nil
}
