package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Env   string
	Port  string
	DBURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret        string
	JWTIssuer        string
	AccessExpiryMin  int
	RefreshExpiryMin int

	CookieDomain string
	CookieSecure bool

	// RegistrationEnabled gates registration by username. Off by default
	// to curb abuse; email-code login can still auto-provision accounts.
	RegistrationEnabled bool
	EmailRequired       bool
	CheckUsernameUnique bool
	CheckEmailUnique    bool

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func Load() *Config {
	return &Config{
		Env:   getEnv("ENV", "development"),
		Port:  getEnv("PORT", "8080"),
		DBURL: mustGetEnv("DB_URL"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTIssuer:        getEnv("JWT_ISSUER", "lingnite"),
		AccessExpiryMin:  getEnvAsInt("ACCESS_TOKEN_EXPIRY", 60),
		RefreshExpiryMin: getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),

		CookieDomain: getEnv("COOKIE_DOMAIN", "localhost"),
		CookieSecure: getEnvAsBool("COOKIE_SECURE", false),

		RegistrationEnabled: getEnvAsBool("REGISTRATION_ENABLED", false),
		EmailRequired:       getEnvAsBool("REGISTRATION_EMAIL_REQUIRED", true),
		CheckUsernameUnique: getEnvAsBool("CHECK_USERNAME_UNIQUE", true),
		CheckEmailUnique:    getEnvAsBool("CHECK_EMAIL_UNIQUE", true),

		SMTPHost: getEnv("SMTP_HOST", "localhost"),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", "noreply@userservice.com"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
