package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	PropertyLabel string
}

// defaultSQLitePath is used when no database URL is given and the driver is
// sqlite, so a bare `go run .` works for local development.
const defaultSQLitePath = "file:pricepoll.db"

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pricepoll", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Survey presentation
	fs.StringVar(&cfg.PropertyLabel, "property", "", "Listing label shown on the admin dashboard")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3561 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLitePath
	}

	if cfg.PropertyLabel == "" {
		cfg.PropertyLabel = os.Getenv("PROPERTY_LABEL")
	}
	if cfg.PropertyLabel == "" {
		cfg.PropertyLabel = "3561 W Dublin St"
	}

	return cfg, nil
}
