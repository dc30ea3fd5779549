package config

import (
	"fmt"
	"os"
	"strconv"

	"finaura/api/engine"

	"gopkg.in/yaml.v3"
)

const (
	DriverFile     = "file"
	DriverMongoDB  = "mongodb"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port          string `yaml:"port"`
		Mode          string `yaml:"mode"`
		AllowedOrigin string `yaml:"allowed_origin"`
	} `yaml:"server"`
	Log struct {
		Development bool   `yaml:"development"`
		Level       string `yaml:"level"`
	} `yaml:"log"`
	Store struct {
		Driver          string `yaml:"driver"`
		FilePath        string `yaml:"file_path"`
		MongoURI        string `yaml:"mongo_uri"`
		MongoDatabase   string `yaml:"mongo_database"`
		MongoCollection string `yaml:"mongo_collection"`
		PostgresURL     string `yaml:"postgres_url"`
		ProfileID       string `yaml:"profile_id"`
	} `yaml:"store"`
	Engine struct {
		ReferencePrice            int    `yaml:"reference_price"`
		CurrencySymbol            string `yaml:"currency_symbol"`
		ShoesTriggersIntervention *bool  `yaml:"shoes_triggers_intervention"`
		ComfortEnabled            *bool  `yaml:"comfort_enabled"`
	} `yaml:"engine"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGIN"); v != "" {
		cfg.Server.AllowedOrigin = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Development = b
		}
	}
	if v := os.Getenv("STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("MOCK_DATA_PATH"); v != "" {
		cfg.Store.FilePath = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Store.MongoURI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.Store.MongoDatabase = v
	}
	if v := os.Getenv("MONGO_COLLECTION"); v != "" {
		cfg.Store.MongoCollection = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Store.PostgresURL = v
	}
	if v := os.Getenv("PROFILE_ID"); v != "" {
		cfg.Store.ProfileID = v
	}
	if v := os.Getenv("REFERENCE_PRICE"); v != "" {
		if price, err := strconv.Atoi(v); err == nil {
			cfg.Engine.ReferencePrice = price
		}
	}
	if v := os.Getenv("CURRENCY_SYMBOL"); v != "" {
		cfg.Engine.CurrencySymbol = v
	}

	// Defaults
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
	if cfg.Server.AllowedOrigin == "" {
		cfg.Server.AllowedOrigin = "*"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverFile
	}
	if cfg.Store.FilePath == "" {
		cfg.Store.FilePath = "data/mock_data.json"
	}
	if cfg.Store.ProfileID == "" {
		cfg.Store.ProfileID = "demo"
	}
	if cfg.Engine.ReferencePrice == 0 {
		cfg.Engine.ReferencePrice = engine.DefaultReferencePrice
	}
	if cfg.Engine.CurrencySymbol == "" {
		cfg.Engine.CurrencySymbol = "₹"
	}

	return cfg, nil
}

// Validate checks that the selected store is fully configured.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile:
		if c.Store.FilePath == "" {
			return fmt.Errorf("store.file_path is required for the file driver")
		}
	case DriverMongoDB:
		if c.Store.MongoURI == "" {
			return fmt.Errorf("store.mongo_uri is required for the mongodb driver")
		}
	case DriverPostgres:
		if c.Store.PostgresURL == "" {
			return fmt.Errorf("store.postgres_url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Engine.ReferencePrice <= 0 {
		return fmt.Errorf("engine.reference_price must be positive")
	}
	return nil
}

// EngineOptions converts the engine section, treating unset switches as enabled.
func (c *Config) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.ReferencePrice = c.Engine.ReferencePrice
	opts.CurrencySymbol = c.Engine.CurrencySymbol
	if c.Engine.ShoesTriggersIntervention != nil {
		opts.ShoesTriggersIntervention = *c.Engine.ShoesTriggersIntervention
	}
	if c.Engine.ComfortEnabled != nil {
		opts.ComfortEnabled = *c.Engine.ComfortEnabled
	}
	return opts
}
