// Package db opens the relational store and keeps its schema current.
package db

import (
	"fmt"
	"os"
)

// Supported values of DB_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the connection settings for the relational store.
type Config struct {
	Driver   string
	Path     string // sqlite database file
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	RunMigrations bool
}

// LoadConfigFromEnv reads the database settings from environment variables.
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:        os.Getenv("DB_DRIVER"),
		Path:          os.Getenv("DB_PATH"),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		SSLMode:       os.Getenv("DB_SSLMODE"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverSQLite
	}
	if cfg.Path == "" {
		cfg.Path = "./dividends.db"
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	return cfg
}

// BuildDSN renders the driver-specific connection string.
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
	}
	return cfg.Path
}
