package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/junaidrashid-git/orbit-aether/utils"
)

// Config holds the settings of both applications. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Env    string
	JWT    JWTConfig
	Orbit  OrbitConfig
	Aether AetherConfig
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type OrbitConfig struct {
	Port            string
	DBPath          string
	AuthRequired    bool
	DefaultPassword string
	AdminName       string
	AdminEmail      string
	AdminPassword   string
	// BackupDir enables the nightly database snapshot when set.
	BackupDir       string
	BackupRetention time.Duration
	BackupHour      int
}

type AetherConfig struct {
	Port         string
	DatabaseURL  string
	Host         string
	DBPort       string
	User         string
	Password     string
	Name         string
	SSLMode      string
	ItemsPerPage int
	AdminAPIKey  string
}

// Load reads envFile when it exists and builds a Config from the environment.
// A missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{
		Env: utils.GetEnvOrDefault("APP_ENV", "development"),
		JWT: JWTConfig{
			Secret: utils.GetEnvOrDefault("JWT_SECRET", ""),
			TTL:    utils.GetEnvDuration("JWT_TTL", 24*time.Hour),
		},
		Orbit: OrbitConfig{
			Port:            utils.GetEnvOrDefault("ORBIT_PORT", "8000"),
			DBPath:          utils.GetEnvOrDefault("ORBIT_DB_PATH", "orbit.sqlite"),
			AuthRequired:    utils.GetEnvBool("ORBIT_AUTH_REQUIRED", true),
			DefaultPassword: utils.GetEnvOrDefault("ORBIT_DEFAULT_PASSWORD", "password"),
			AdminName:       utils.GetEnvOrDefault("ORBIT_ADMIN_NAME", "Admin"),
			AdminEmail:      utils.GetEnvOrDefault("ORBIT_ADMIN_EMAIL", "admin@orbit.local"),
			AdminPassword:   utils.GetEnvOrDefault("ORBIT_ADMIN_PASSWORD", "password"),
			BackupDir:       utils.GetEnvOrDefault("ORBIT_BACKUP_DIR", ""),
			BackupRetention: utils.GetEnvDuration("ORBIT_BACKUP_RETENTION", 4*24*time.Hour),
			BackupHour:      utils.GetEnvInt("ORBIT_BACKUP_HOUR", 2),
		},
		Aether: AetherConfig{
			Port:         utils.GetEnvOrDefault("AETHER_PORT", "8080"),
			DatabaseURL:  utils.GetEnvOrDefault("AETHER_DATABASE_URL", ""),
			Host:         utils.GetEnvOrDefault("AETHER_DB_HOST", "localhost"),
			DBPort:       utils.GetEnvOrDefault("AETHER_DB_PORT", "5432"),
			User:         utils.GetEnvOrDefault("AETHER_DB_USER", "postgres"),
			Password:     utils.GetEnvOrDefault("AETHER_DB_PASSWORD", ""),
			Name:         utils.GetEnvOrDefault("AETHER_DB_NAME", "aether_db"),
			SSLMode:      utils.GetEnvOrDefault("AETHER_DB_SSLMODE", "disable"),
			ItemsPerPage: utils.GetEnvInt("AETHER_ITEMS_PER_PAGE", 20),
			AdminAPIKey:  utils.GetEnvOrDefault("AETHER_ADMIN_API_KEY", ""),
		},
	}

	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWT.Secret = "orbit-development-secret"
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the postgres connection string for the storefront database.
func (a AetherConfig) DSN() string {
	if a.DatabaseURL != "" {
		return a.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		a.Host, a.User, a.Password, a.Name, a.DBPort, a.SSLMode,
	)
}
