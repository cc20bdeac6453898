package config

import (
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every environment variable the backend consumes.
type Config struct {
	PostgresUser     string `env:"POSTGRES_USER,default=foodgram"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,default="`
	PostgresDB       string `env:"POSTGRES_DB,default=foodgram"`
	DBHost           string `env:"DB_HOST,default=db"`
	DBPort           int    `env:"DB_PORT,default=5432"`
	UseSQLite        bool   `env:"USE_SQLITE,default=false"`
	SQLitePath       string `env:"SQLITE_PATH,default=foodgram.db"`

	SecretKey    string `env:"SECRET_KEY,required"`
	AllowedHosts string `env:"ALLOWED_HOSTS,default="`
	Debug        bool   `env:"DEBUG,default=false"`

	MediaRoot string `env:"MEDIA_ROOT,default=media"`
}

// Load reads .env when present and decodes the environment.
func Load() (*Config, error) {
	// Missing .env is fine in containers, the variables come from the
	// orchestrator there.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// PostgresDSN builds the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB,
	)
}

// Hosts returns the parsed ALLOWED_HOSTS list. Empty means any host.
func (c *Config) Hosts() []string {
	if strings.TrimSpace(c.AllowedHosts) == "" {
		return nil
	}
	var hosts []string
	for _, h := range strings.Split(c.AllowedHosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
