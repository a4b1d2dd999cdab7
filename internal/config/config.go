package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

type API struct {
	BaseURL string
	Timeout time.Duration
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Cache struct {
	// Driver selects the ratings cache backend: "memory" or "redis".
	Driver string
	Redis  RedisCache
	TTL    time.Duration
}

type Auth struct {
	TokenPath string
	// KidsMode starts the session with the kids filter on.
	KidsMode bool
}

type Config struct {
	API   API
	Cache Cache
	Auth  Auth
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		API:   *newAPI(),
		Cache: *newCache(),
		Auth:  *newAuth(),
	}

	log.Printf("%s client config : %+v\n", logtag, cfg)
	return cfg
}

func newAPI() *API {
	timeout, err := time.ParseDuration(getenv("API_TIMEOUT", "15s"))
	if err != nil {
		log.Fatalf("%s invalid API_TIMEOUT : %v", logtag, err)
	}
	return &API{
		BaseURL: getenv("API_BASE_URL", "http://localhost:5232/api"),
		Timeout: timeout,
	}
}

func newCache() *Cache {
	ttl, err := time.ParseDuration(getenv("CACHE_TTL", "0s"))
	if err != nil {
		log.Fatalf("%s invalid CACHE_TTL : %v", logtag, err)
	}
	return &Cache{
		Driver: getenv("CACHE_DRIVER", "memory"),
		TTL:    ttl,
		Redis: RedisCache{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getenv("REDIS_PORT", "6379"),
			Password: getenv("REDIS_PASSWORD", ""),
		},
	}
}

func newAuth() *Auth {
	return &Auth{
		TokenPath: getenv("TOKEN_PATH", defaultTokenPath()),
		KidsMode:  getenv("KIDS_MODE", "false") == "true",
	}
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.cineniche-token.json"
	}
	return filepath.Join(home, ".cineniche", "token.json")
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
