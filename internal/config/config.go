// Package config handles server configuration: defaults, environment
// variables, then command-line flags, later sources winning.
package config

import (
	"flag"
	"os"
)

type Config struct {
	Addr        string
	Driver      string
	DatabaseDSN string
	SecretKey   string
	UploadDir   string
	DistDir     string
}

// LoadDefaults populates Config with development defaults. The SQLite DSN
// keeps local runs working without Postgres; the secret must be overridden
// in production.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.Driver = "sqlite3"
	c.DatabaseDSN = "unify.db"
	c.SecretKey = "change-me-in-production"
	c.UploadDir = "uploads"
	c.DistDir = "frontend/dist"
}

func (c *Config) parseEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Driver = "postgres"
		c.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		c.SecretKey = v
	}
	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
	if v := os.Getenv("DIST_DIR"); v != "" {
		c.DistDir = v
	}
}

func (c *Config) parseFlags(args []string) {
	fs := flag.NewFlagSet("unify", flag.ExitOnError)
	fs.StringVar(&c.Addr, "addr", c.Addr, "http service address")
	fs.StringVar(&c.Driver, "driver", c.Driver, "database driver (sqlite3 or postgres)")
	fs.StringVar(&c.DatabaseDSN, "dsn", c.DatabaseDSN, "database connection string")
	fs.StringVar(&c.UploadDir, "uploads", c.UploadDir, "upload directory")
	fs.StringVar(&c.DistDir, "dist", c.DistDir, "built frontend directory")
	fs.Parse(args)
}

// Load builds a Config by applying defaults, then overlaying environment
// variables and finally command-line flags.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.parseEnv()
	cfg.parseFlags(os.Args[1:])
	return cfg
}
