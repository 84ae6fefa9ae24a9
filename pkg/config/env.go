// Env loader
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAyatAudioBaseURL = "https://everyayah.com/data/Alafasy_128kbps"
	defaultFullAudioBaseURL = "https://cdn.equran.id/audio-full"
	defaultQariFull         = "Abdullah-Al-Juhany"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	DBHost        string
	DBPort        string
	DBName        string
	DBUser        string
	DBPassword    string
	DBSchema      string
	DBSSLMode     string
	DBMaxConns    int
	DBAutoMigrate bool

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	AudioAyatBaseURL string
	AudioFullBaseURL string
	AudioDefaultQari string
}

// LoadConfig loads environment variables, reading .env.production or
// .env.development first depending on APP_ENV.
func LoadConfig() *Config {
	switch GetAppEnv() {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		Port:     getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBName:        getEnv("DB_DATABASE", "db_alquran"),
		DBUser:        getEnv("DB_USERNAME", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBSchema:      getEnv("DB_SCHEMA", "public"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 10),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"https://*", "http://*"}),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),

		AudioAyatBaseURL: strings.TrimRight(getEnv("AUDIO_AYAT_BASE_URL", defaultAyatAudioBaseURL), "/"),
		AudioFullBaseURL: strings.TrimRight(getEnv("AUDIO_FULL_BASE_URL", defaultFullAudioBaseURL), "/"),
		AudioDefaultQari: getEnv("AUDIO_DEFAULT_QARI", defaultQariFull),
	}
}

// DatabaseURL renders the postgres connection string for pgxpool.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:   c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("search_path", c.DBSchema)
	if c.DBMaxConns > 0 {
		q.Set("pool_max_conns", strconv.Itoa(c.DBMaxConns))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvList(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
