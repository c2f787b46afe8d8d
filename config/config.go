package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// WhatsApp Cloud API configuration.
	WhatsAppVerifyToken       string `mapstructure:"WHATSAPP_VERIFY_TOKEN"`
	WhatsAppPhoneNumberID     string `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppAccessToken       string `mapstructure:"WHATSAPP_ACCESS_TOKEN"`
	WhatsAppBusinessAccountID string `mapstructure:"WHATSAPP_BUSINESS_ACCOUNT_ID"`
	MessageDedupTTLHours      int    `mapstructure:"MESSAGE_DEDUP_TTL_HOURS"`

	// Fallback tenant used when webhook metadata matches no company.
	FallbackCompanyID   string `mapstructure:"FALLBACK_COMPANY_ID"`
	FallbackCompanyName string `mapstructure:"FALLBACK_COMPANY_NAME"`

	// Email configuration.
	SendGridAPIKey string `mapstructure:"SENDGRID_API_KEY"`
	EmailFrom      string `mapstructure:"EMAIL_FROM"`
	EmailFromName  string `mapstructure:"EMAIL_FROM_NAME"`

	// Staff inbox alerted about inbound WhatsApp messages. Empty disables
	// alerting and inbound messages are only logged.
	StaffNotifyEmail string `mapstructure:"STAFF_NOTIFY_EMAIL"`
	StaffNotifyName  string `mapstructure:"STAFF_NOTIFY_NAME"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MESSAGE_DEDUP_TTL_HOURS", 48)
	viper.SetDefault("FALLBACK_COMPANY_ID", "CMP000001")
	viper.SetDefault("FALLBACK_COMPANY_NAME", "Default Company")
	viper.SetDefault("EMAIL_FROM_NAME", "JanSeva Portal")
	viper.SetDefault("STAFF_NOTIFY_NAME", "Department Staff")

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
