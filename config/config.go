package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
)

const defaultAtlasCluster = "cluster0.ufkobjs.mongodb.net"

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://study-hive-6e0e8.firebaseapp.com",
	"https://study-hive-6e0e8.web.app",
}

type Config struct {
	MongoURI       string
	MongoDB        string
	Port           string
	SecretToken    string
	TokenTTL       time.Duration
	StripeKey      string
	RedisURL       string
	AllowedOrigins []string
	Environment    string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func getEnvList(key string, fallback []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// mongoURI prefers MONGO_URI and otherwise builds the Atlas SRV address from
// DB_USER / DB_PASS.
func mongoURI() string {
	if uri := getEnv("MONGO_URI", ""); uri != "" {
		return uri
	}
	user := getEnv("DB_USER", "")
	if user == "" {
		return "mongodb://localhost:27017"
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(user),
		url.QueryEscape(getEnv("DB_PASS", "")),
		getEnv("DB_CLUSTER", defaultAtlasCluster),
	)
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		glog.Info("no .env file found, using process environment")
	}

	ttl, err := getEnvDuration("TOKEN_TTL", time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		MongoURI:       mongoURI(),
		MongoDB:        getEnv("MONGO_DB", "studyHiveDB"),
		Port:           getEnv("PORT", "5000"),
		SecretToken:    getEnv("SECRET_TOKEN", ""),
		TokenTTL:       ttl,
		StripeKey:      getEnv("STRIPE_KEY", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", defaultOrigins),
		Environment:    getEnv("APP_ENV", "development"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SecretToken == "" {
		return errors.New("config: SECRET_TOKEN is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: TOKEN_TTL must be positive")
	}
	if c.Port == "" {
		return errors.New("config: PORT must not be empty")
	}
	if c.MongoDB == "" {
		return errors.New("config: MONGO_DB must not be empty")
	}
	return nil
}
