package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Auth     AuthConfig
	Builder  BuilderConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// UseMock swaps the configured database for the seeded in-memory store.
	UseMock bool
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level string
}

// AuthConfig groups authentication-related settings.
type AuthConfig struct {
	Session SessionConfig
}

// SessionConfig controls cookie session behavior.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// BuilderConfig carries the diploma builder product settings.
type BuilderConfig struct {
	// UploadDir is where archived diploma images are written.
	UploadDir string
	// AssetBaseURL is the public prefix under which emblem assets are served.
	AssetBaseURL string
	// AssetRoot is the on-disk directory backing AssetBaseURL.
	AssetRoot string
	// MaxPerUser limits saved diplomas per account; zero means unlimited.
	MaxPerUser int
	// AllowGuests permits diploma creation without an account.
	AllowGuests bool
	// DefaultPaperColor seeds new configurations.
	DefaultPaperColor string
	// Product identifiers route a successful save toward a checkout flow;
	// zero disables the purchase redirect.
	DigitalProductID int
	PrintedProductID int
	PremiumProductID int
	// CheckoutURLTemplate receives a product id via %d.
	CheckoutURLTemplate string
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Database = DatabaseConfig{
		URL: firstNonEmpty(
			os.Getenv("DATABASE_URL"),
			os.Getenv("DB_URL"),
			"",
		),
		MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 0),
		MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 0),
		ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), 0),
		ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 0),
		UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), false),
	}

	cfg.Logging = LoggingConfig{
		Level: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	cfg.Auth = AuthConfig{
		Session: SessionConfig{
			Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), 12*time.Hour),
			CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "diplomabuilder_session"),
			CookieDomain: os.Getenv("SESSION_COOKIE_DOMAIN"),
			CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), false),
		},
	}

	cfg.Builder = BuilderConfig{
		UploadDir:           firstNonEmpty(os.Getenv("UPLOAD_DIR"), "uploads/diplomas"),
		AssetBaseURL:        firstNonEmpty(os.Getenv("ASSET_BASE_URL"), "/assets"),
		AssetRoot:           firstNonEmpty(os.Getenv("ASSET_ROOT"), "web/static"),
		MaxPerUser:          parseIntWithDefault(os.Getenv("DIPLOMA_MAX_PER_USER"), 10),
		AllowGuests:         parseBoolWithDefault(os.Getenv("DIPLOMA_ALLOW_GUESTS"), true),
		DefaultPaperColor:   firstNonEmpty(os.Getenv("DIPLOMA_DEFAULT_PAPER_COLOR"), "white"),
		DigitalProductID:    parseIntWithDefault(os.Getenv("DIPLOMA_DIGITAL_PRODUCT_ID"), 0),
		PrintedProductID:    parseIntWithDefault(os.Getenv("DIPLOMA_PRINTED_PRODUCT_ID"), 0),
		PremiumProductID:    parseIntWithDefault(os.Getenv("DIPLOMA_PREMIUM_PRODUCT_ID"), 0),
		CheckoutURLTemplate: firstNonEmpty(os.Getenv("CHECKOUT_URL_TEMPLATE"), "/checkout/?add-to-cart=%d"),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if cfg.Builder.MaxPerUser < 0 {
		return Config{}, fmt.Errorf("diploma limit must not be negative")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := time.ParseDuration(trimmed)
	if err != nil {
		return def
	}
	return parsed
}
