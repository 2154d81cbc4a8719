package configuration

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port       string `validate:"required"`
	APIBaseURL string `validate:"required,url"`
	JWTSecret  string `validate:"required"`
	RedisAddr  string
	FontDir    string
	CacheTTL   time.Duration
}

// Cfg is filled once by LoadConfig and read everywhere else.
var Cfg Config

// LoadConfig reads .env when present, then the process environment, and
// validates the result. The service refuses to start on a bad configuration.
func LoadConfig() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using process environment")
	}

	ttl := 60
	if raw := os.Getenv("CACHE_TTL_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttl = n
		}
	}

	Cfg = Config{
		Port:       envOr("PORT", "8080"),
		APIBaseURL: os.Getenv("API_BASE_URL"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
		FontDir:    envOr("FONT_DIR", "fonts"),
		CacheTTL:   time.Duration(ttl) * time.Second,
	}

	if err := validator.New().Struct(Cfg); err != nil {
		log.Fatal("invalid configuration: ", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
