// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration.
// It is loaded once at process start and treated as immutable afterwards.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Server   ServerConfig
	Identity IdentityConfig
	Storage  StorageConfig
	Notify   NotifyConfig
	Rankings RankingsConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name        string
	Environment string
	// OwnerOpenID is the external identity automatically granted the admin role.
	OwnerOpenID string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// IdentityConfig holds identity resolution configuration.
type IdentityConfig struct {
	// Mode selects the resolver: "static" (fixed development identity) or "token" (PASETO bearer tokens).
	Mode string
	// TokenKey is the hex-encoded symmetric key for token verification (required in token mode).
	TokenKey string
	// StaticOpenID is the identity returned by the static resolver.
	StaticOpenID string
}

// StorageConfig holds object storage collaborator configuration.
type StorageConfig struct {
	BaseURL string
	APIKey  string
}

// NotifyConfig holds owner notification collaborator configuration.
type NotifyConfig struct {
	BaseURL string
	APIKey  string
}

// RankingsConfig holds the external rankings service configuration.
type RankingsConfig struct {
	BaseURL string
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	appName := flag.String("app-name", "", "Application name")
	env := flag.String("env", "", "Environment (development, staging, production)")
	ownerOpenID := flag.String("owner-open-id", "", "External identity granted the admin role")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")

	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	identityMode := flag.String("identity-mode", "", "Identity resolver mode (static or token)")
	identityTokenKey := flag.String("identity-token-key", "", "Hex-encoded symmetric key for token verification")
	staticOpenID := flag.String("static-open-id", "", "Identity returned by the static resolver")

	storageBaseURL := flag.String("storage-base-url", "", "Object storage endpoint")
	storageAPIKey := flag.String("storage-api-key", "", "Object storage API key")
	notifyBaseURL := flag.String("notify-base-url", "", "Owner notification endpoint")
	notifyAPIKey := flag.String("notify-api-key", "", "Owner notification API key")
	rankingsBaseURL := flag.String("rankings-base-url", "", "External rankings service base URL")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Name:        getConfigValue(*appName, "APP_NAME", "BookPulse Server"),
			Environment: getConfigValue(*env, "ENV", "development"),
			OwnerOpenID: getConfigValue(*ownerOpenID, "OWNER_OPEN_ID", ""),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Identity: IdentityConfig{
			Mode:         getConfigValue(*identityMode, "IDENTITY_MODE", "static"),
			TokenKey:     getConfigValue(*identityTokenKey, "IDENTITY_TOKEN_KEY", ""),
			StaticOpenID: getConfigValue(*staticOpenID, "STATIC_OPEN_ID", "dev-user"),
		},
		Storage: StorageConfig{
			BaseURL: getConfigValue(*storageBaseURL, "STORAGE_BASE_URL", ""),
			APIKey:  getConfigValue(*storageAPIKey, "STORAGE_API_KEY", ""),
		},
		Notify: NotifyConfig{
			BaseURL: getConfigValue(*notifyBaseURL, "NOTIFY_BASE_URL", ""),
			APIKey:  getConfigValue(*notifyAPIKey, "NOTIFY_API_KEY", ""),
		},
		Rankings: RankingsConfig{
			BaseURL: getConfigValue(*rankingsBaseURL, "RANKINGS_BASE_URL", ""),
		},
	}

	// Parse server timeouts.
	var err error
	if cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Identity.Mode {
	case "static":
		if c.Identity.StaticOpenID == "" {
			return errors.New("STATIC_OPEN_ID is required in static identity mode")
		}
	case "token":
		if c.Identity.TokenKey == "" {
			return errors.New("IDENTITY_TOKEN_KEY is required in token identity mode")
		}
	default:
		return fmt.Errorf("invalid identity mode: %s (must be static or token)", c.Identity.Mode)
	}

	// Storage and notification endpoints are optional at startup; operations
	// that need them fail with an internal error when unconfigured.

	return nil
}

// parseDurationValue resolves a duration from flag, env var, or default.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	raw := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, err)
	}
	return d, nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
