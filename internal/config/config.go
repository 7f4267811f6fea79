package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Issuer    IssuerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// StorageConfig locates the flat-file backing resources. The receipt
// collection and the sequence counter live side by side under Path.
type StorageConfig struct {
	Path        string
	ReceiptFile string
	CounterFile string
}

// IssuerConfig holds the fixed issuer identity stamped on every receipt.
type IssuerConfig struct {
	Name     string
	Extra    string
	Email    string
	Currency string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "geekyard-rapp")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("STORAGE_PATH", ".")
	viper.SetDefault("RECEIPTS_FILE", "receipts.json")
	viper.SetDefault("COUNTER_FILE", "receipt_count.txt")
	viper.SetDefault("ISSUER_NAME", "Madhavan S")
	viper.SetDefault("ISSUER_EXTRA", "Geek Yard - XSN")
	viper.SetDefault("ISSUER_EMAIL", "Network.xyspace@gmail.com")
	viper.SetDefault("ISSUER_CURRENCY", "₹")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Storage: StorageConfig{
			Path:        viper.GetString("STORAGE_PATH"),
			ReceiptFile: viper.GetString("RECEIPTS_FILE"),
			CounterFile: viper.GetString("COUNTER_FILE"),
		},
		Issuer: IssuerConfig{
			Name:     viper.GetString("ISSUER_NAME"),
			Extra:    viper.GetString("ISSUER_EXTRA"),
			Email:    viper.GetString("ISSUER_EMAIL"),
			Currency: viper.GetString("ISSUER_CURRENCY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// ReceiptPath returns the full path to the receipt collection file.
func (c *StorageConfig) ReceiptPath() string {
	return filepath.Join(c.Path, c.ReceiptFile)
}

// CounterPath returns the full path to the sequence counter file.
func (c *StorageConfig) CounterPath() string {
	return filepath.Join(c.Path, c.CounterFile)
}
