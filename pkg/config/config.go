package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	Server  ServerConfig
	Auth    AuthConfig
}

type APIConfig struct {
	// BaseURL of the StayEase backend. Every resource call is issued against it.
	BaseURL string
	// DownloadDir is where receipt PDFs are saved.
	DownloadDir string
}

type SessionConfig struct {
	// CookieName holds the session token cookie issued on login.
	CookieName string
	// JarFile persists cookies between CLI invocations.
	JarFile string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

func Load() *Config {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL:     getEnv("STAYEASE_API_BASE_URL", "http://localhost:9090"),
			DownloadDir: getEnv("STAYEASE_DOWNLOAD_DIR", "."),
		},
		Session: SessionConfig{
			CookieName: getEnv("STAYEASE_COOKIE_NAME", "stayease_jwt"),
			JarFile:    getEnv("STAYEASE_JAR_FILE", defaultJarFile()),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "9090"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", "dev-only-secret-change-in-prod"),
			SessionTTL: getDuration("SESSION_TTL", 24*time.Hour),
		},
	}
}

func defaultJarFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stayease-cookies.json"
	}
	return filepath.Join(home, ".stayease", "cookies.json")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
