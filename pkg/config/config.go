package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	PayerMemory   = "memory"
	PayerDynamoDB = "dynamodb"
)

// Config holds the settings read from the environment.
type Config struct {
	HTTPPort          string
	MarketplaceOwner  string
	LogLevel          slog.Level
	LogFormat         string
	Payer             string
	AccountsTableName string
	LedgerTableName   string
	EventsQueueURL    string
}

// ArchiverConfig holds the settings of the journal archiver Lambda.
type ArchiverConfig struct {
	LogLevel        slog.Level
	LedgerTableName string
}

// Load reads a .env file if one exists, then the process environment.
func Load() (*Config, error) {
	loadDotEnv()
	return FromEnv()
}

// LoadArchiver is Load for the archiver Lambda.
func LoadArchiver() (*ArchiverConfig, error) {
	loadDotEnv()
	return ArchiverFromEnv()
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:          getenv("HTTP_PORT", "8080"),
		MarketplaceOwner:  os.Getenv("MARKETPLACE_OWNER"),
		LogFormat:         strings.ToLower(getenv("LOG_FORMAT", "json")),
		Payer:             strings.ToLower(getenv("PAYER", PayerMemory)),
		AccountsTableName: os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME"),
		LedgerTableName:   os.Getenv("DYNAMODB_LEDGER_TABLE_NAME"),
		EventsQueueURL:    os.Getenv("SQS_EVENTS_QUEUE_URL"),
	}

	level, err := logLevel()
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	if cfg.MarketplaceOwner == "" {
		return nil, fmt.Errorf("MARKETPLACE_OWNER environment variable not set")
	}
	switch cfg.Payer {
	case PayerMemory:
	case PayerDynamoDB:
		if cfg.AccountsTableName == "" {
			return nil, fmt.Errorf("DYNAMODB_ACCOUNTS_TABLE_NAME is required when PAYER=%s", PayerDynamoDB)
		}
	default:
		return nil, fmt.Errorf("unknown PAYER %q", cfg.Payer)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("unknown LOG_FORMAT %q", cfg.LogFormat)
	}
	return cfg, nil
}

// ArchiverFromEnv builds an ArchiverConfig from the process environment alone.
func ArchiverFromEnv() (*ArchiverConfig, error) {
	level, err := logLevel()
	if err != nil {
		return nil, err
	}
	cfg := &ArchiverConfig{
		LogLevel:        level,
		LedgerTableName: os.Getenv("DYNAMODB_LEDGER_TABLE_NAME"),
	}
	if cfg.LedgerTableName == "" {
		return nil, fmt.Errorf("DYNAMODB_LEDGER_TABLE_NAME environment variable not set")
	}
	return cfg, nil
}

// NeedsAWS reports whether any configured component talks to AWS.
func (c *Config) NeedsAWS() bool {
	return c.Payer == PayerDynamoDB || c.EventsQueueURL != "" || c.LedgerTableName != ""
}

func logLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return level, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
