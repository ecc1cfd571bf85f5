// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	// Time zone database for hosts without one
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageDriverMySQL  = "mysql"
	StorageDriverRedis  = "redis"
	StorageDriverMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Media    MediaConfig
	Catalog  CatalogConfig
	Game     GameConfig
	Location *time.Location
}

// StorageConfig selects the key-value store driver
type StorageConfig struct {
	Driver string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host      string
	Port      int
	Password  string
	DB        int
	KeyPrefix string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// MediaConfig holds settings of recorded clip storage
type MediaConfig struct {
	BasePath string
}

// CatalogConfig holds the skill catalog source.
// An empty path means the catalog embedded into the binary.
type CatalogConfig struct {
	Path string
}

// GameConfig holds mini-game settings
type GameConfig struct {
	ItemTimeLimit  time.Duration
	OrderTimeLimit time.Duration
}

// Load reads configuration from environment variables.
//
// A .env file in the working directory is loaded when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}

	// Storage configuration
	driver := strings.ToLower(os.Getenv("STORAGE_DRIVER"))
	if driver == "" {
		driver = StorageDriverMySQL
	}
	cfg.Storage.Driver = driver

	switch driver {
	case StorageDriverMySQL:
		if err := loadDatabase(cfg); err != nil {
			return nil, err
		}
	case StorageDriverRedis:
		if err := loadRedis(cfg); err != nil {
			return nil, err
		}
	case StorageDriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER: %s, must be 'mysql', 'redis' or 'memory'", driver)
	}

	// Server configuration
	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Media configuration
	cfg.Media.BasePath = os.Getenv("MEDIA_BASE_PATH")
	if cfg.Media.BasePath == "" {
		cfg.Media.BasePath = "./media"
	}

	cfg.Catalog.Path = os.Getenv("CATALOG_PATH")

	// Game configuration
	if cfg.Game.ItemTimeLimit, err = durationEnv("GAME_ITEM_TIME_LIMIT", 45*time.Second); err != nil {
		return nil, err
	}
	if cfg.Game.OrderTimeLimit, err = durationEnv("GAME_ORDER_TIME_LIMIT", 120*time.Second); err != nil {
		return nil, err
	}

	// Time zone of dates shown on the dashboard and in exports
	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = "Asia/Seoul"
	}
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return cfg, nil
}

// loadDatabase reads MySQL settings; all of them are required
func loadDatabase(cfg *Config) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	return nil
}

// loadRedis reads Redis settings
func loadRedis(cfg *Config) error {
	cfg.Redis.Host = os.Getenv("REDIS_HOST")
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}

	port, err := intEnv("REDIS_PORT", 6379)
	if err != nil {
		return err
	}
	cfg.Redis.Port = port

	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")

	db, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return err
	}
	cfg.Redis.DB = db

	cfg.Redis.KeyPrefix = os.Getenv("REDIS_KEY_PREFIX")
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "nursingskill:"
	}

	return nil
}

// parseOrigins parses comma-separated CORS origins.
// An empty list allows all origins.
func parseOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func intEnv(key string, def int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// durationEnv reads a duration such as "45s" or "2m"; a bare number means seconds
func durationEnv(key string, def time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		value = strconv.Itoa(n) + "s"
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < time.Second {
		return 0, fmt.Errorf("invalid %s: must be at least 1s", key)
	}
	return d, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the Redis address in host:port form
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
