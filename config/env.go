package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	AppName         string
	Port            string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	DatabaseURL     string
	JWTSecret       string
	JWTExpiry       string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	PayPalClientID  string
	PayPalAppSecret string
	PayPalAPIURL    string
	ServerURL       string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		AppName:         getEnv("APP_NAME", "Prostore"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8080")),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "prostore"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getEnv("JWT_EXPIRY", "720h"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        os.Getenv("SMTP_FROM"),
		PayPalClientID:  os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalAppSecret: os.Getenv("PAYPAL_APP_SECRET"),
		PayPalAPIURL:    getEnv("PAYPAL_API_URL", "https://api-m.sandbox.paypal.com"),
		ServerURL:       getEnv("SERVER_URL", "http://localhost:8080"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
