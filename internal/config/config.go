package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Admin     AdminConfig
	Brand     BrandConfig
	Invoice   InvoiceConfig
	Payment   PaymentConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

// SecurityConfig holds password hashing settings
type SecurityConfig struct {
	SaltRounds int
}

// AdminConfig describes the operator account seeded on first start
type AdminConfig struct {
	Name     string
	Email    string
	Password string
	Mobile   string
}

// BrandConfig is printed in the invoice header
type BrandConfig struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

type InvoiceConfig struct {
	LogoPath string
}

type PaymentConfig struct {
	MaxRetries int
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

	setDefaults()

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Security: SecurityConfig{
			SaltRounds: viper.GetInt("SALT_ROUNDS"),
		},
		Admin: AdminConfig{
			Name:     viper.GetString("ADMIN_NAME"),
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Mobile:   viper.GetString("ADMIN_MOBILE"),
		},
		Brand: BrandConfig{
			Name:    viper.GetString("BRAND_NAME"),
			Address: viper.GetString("BRAND_ADDRESS"),
			Phone:   viper.GetString("BRAND_PHONE"),
			Email:   viper.GetString("BRAND_EMAIL"),
			GSTIN:   viper.GetString("BRAND_GSTIN"),
		},
		Invoice: InvoiceConfig{
			LogoPath: viper.GetString("INVOICE_LOGO_PATH"),
		},
		Payment: PaymentConfig{
			MaxRetries: viper.GetInt("PAYMENT_MAX_RETRIES"),
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

func setDefaults() {
	viper.SetDefault("APP_NAME", "backoffice-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "4000")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "swarn")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 144)
	viper.SetDefault("SALT_ROUNDS", 10)
	viper.SetDefault("ADMIN_NAME", "Administrator")
	viper.SetDefault("BRAND_NAME", "SWARN AABHUSHAN")
	viper.SetDefault("BRAND_ADDRESS", "Naigarhi, Mauganj, Madhya Pradesh - 486341")
	viper.SetDefault("BRAND_PHONE", "+91 94249 81420")
	viper.SetDefault("BRAND_EMAIL", "contact@swarnjeweller.in")
	viper.SetDefault("BRAND_GSTIN", "09ABCDE1234F1Z6")
	viper.SetDefault("INVOICE_LOGO_PATH", "assets/brand_logo.png")
	viper.SetDefault("PAYMENT_MAX_RETRIES", 3)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// IsProduction reports whether the service runs with production settings
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
