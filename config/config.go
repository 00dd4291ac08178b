package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis holds the per-client durable state (cart, booking draft, preferences).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStateDB  int    `mapstructure:"REDIS_STATE_DB"`

	// Persistence sink for orders and ratings: "firestore" or "mongo".
	RecordsBackend string `mapstructure:"RECORDS_BACKEND"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabaseName   string `mapstructure:"DATABASE_NAME"`

	// Firebase project backing identity and the Firestore sink.
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	AdminEmail      string        `mapstructure:"ADMIN_EMAIL"`
	ShopTimezone    string        `mapstructure:"SHOP_TIMEZONE"`
	BookingDraftTTL time.Duration `mapstructure:"BOOKING_DRAFT_TTL"`
	StateTTL        time.Duration `mapstructure:"STATE_TTL"`
	DefaultLanguage string        `mapstructure:"DEFAULT_LANGUAGE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STATE_DB", 0)
	viper.SetDefault("RECORDS_BACKEND", "firestore")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "barbershop")
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("SHOP_TIMEZONE", "Atlantic/Canary")
	viper.SetDefault("BOOKING_DRAFT_TTL", "30m")
	viper.SetDefault("STATE_TTL", "720h")
	viper.SetDefault("DEFAULT_LANGUAGE", "es")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMongo reports whether orders and ratings go to MongoDB instead of Firestore.
func (c Config) UsesMongo() bool {
	return strings.EqualFold(c.RecordsBackend, "mongo")
}

// IdentityConfigured reports whether Firebase Auth can verify ID tokens.
func (c Config) IdentityConfigured() bool {
	return c.FirebaseProjectID != ""
}

// PersistenceConfigured reports whether the selected records backend has
// everything it needs to accept writes.
func (c Config) PersistenceConfigured() bool {
	if c.UsesMongo() {
		return c.DatabaseURL != ""
	}
	return c.FirebaseProjectID != ""
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// ShopLocation resolves SHOP_TIMEZONE, falling back to UTC.
func (c Config) ShopLocation() *time.Location {
	loc, err := time.LoadLocation(c.ShopTimezone)
	if err != nil {
		log.Printf("Unknown SHOP_TIMEZONE %q, using UTC", c.ShopTimezone)
		return time.UTC
	}
	return loc
}
