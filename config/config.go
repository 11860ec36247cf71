package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	AWS       AWSConfig
	DNS       DNSConfig
	Redis     RedisConfig
	Provision ProvisionConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type AuthConfig struct {
	Secret   string
	Issuer   string
	TokenTTL int // hours
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type DNSConfig struct {
	HostedDomain string // apex domain new subdomains hang off, e.g. thequickanswers.online
	HostedZoneID string
	Backend      string // "route53" or "redis"
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ProvisionConfig struct {
	DomainStrategy   string // "default" or "branch"
	AllowReprovision bool
	BranchName       string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "subsite"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			Secret:   getEnv("JWT_SECRET", ""),
			Issuer:   getEnv("JWT_ISSUER", "subsite-backend"),
			TokenTTL: getEnvAsInt("JWT_TTL_HOURS", 24),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		DNS: DNSConfig{
			HostedDomain: getEnv("AWS_ROUTE_53_HOSTED_DOMAIN", ""),
			HostedZoneID: getEnv("AWS_ROUTE_53_HOSTED_ZONE_ID", ""),
			Backend:      getEnv("MAPPING_BACKEND", "route53"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Provision: ProvisionConfig{
			DomainStrategy:   getEnv("HOSTING_DOMAIN_STRATEGY", "default"),
			AllowReprovision: getEnvAsBool("PROVISION_ALLOW_REPROVISION", false),
			BranchName:       getEnv("HOSTING_BRANCH_NAME", "main"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.DNS.HostedDomain == "" {
		return fmt.Errorf("AWS_ROUTE_53_HOSTED_DOMAIN is required")
	}

	switch c.DNS.Backend {
	case "route53":
		if c.DNS.HostedZoneID == "" {
			return fmt.Errorf("AWS_ROUTE_53_HOSTED_ZONE_ID is required for the route53 backend")
		}
	case "redis":
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("MAPPING_BACKEND must be route53 or redis, got %q", c.DNS.Backend)
	}

	switch c.Provision.DomainStrategy {
	case "default", "branch":
	default:
		return fmt.Errorf("HOSTING_DOMAIN_STRATEGY must be default or branch, got %q", c.Provision.DomainStrategy)
	}

	return nil
}

// DSN builds a lib/pq connection string from the database section.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// DatabaseURL builds a URL-form DSN, used by the migration runner.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name, c.Database.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
