package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv string
	Port   string

	MongoURI     string
	MongoDB      string
	MongoMaxPool uint64
	MongoMinPool uint64
	MongoTimeout time.Duration

	JWTSecret string
	JWTTTL    time.Duration
	JWTIssuer string

	LogLevel  string
	LogFormat string

	CORSOrigins string

	Media MediaConfig
	Admin AdminConfig
}

// MediaConfig selects the object store for uploads. An empty Provider
// disables uploads.
type MediaConfig struct {
	Provider  string // minio, s3 or empty
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
	PublicURL string
}

type AdminConfig struct {
	Username string
	Email    string
	Password string
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

var defaults = map[string]any{
	"APP_ENV":        "development",
	"PORT":           "3000",
	"MONGO_URI":      "mongodb://localhost:27017",
	"MONGO_DB":       "absss",
	"MONGO_MAX_POOL": 50,
	"MONGO_MIN_POOL": 0,
	"MONGO_TIMEOUT":  "10s",
	"JWT_TTL":        "24h",
	"JWT_ISSUER":     "absss-backend",
	"LOG_LEVEL":      "info",
	"LOG_FORMAT":     "console",
	"CORS_ORIGINS":   "*",
	"MEDIA_PROVIDER": "",
	"MEDIA_REGION":   "us-east-1",
	"MEDIA_USE_SSL":  true,
	"ADMIN_USERNAME": "admin",
	"ADMIN_EMAIL":    "admin@absss.org",
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	return Load(viper.New())
}

// Load builds the config from v, which is bound to the environment here.
func Load(v *viper.Viper) (*Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	cfg := &Config{
		AppEnv: v.GetString("APP_ENV"),
		Port:   v.GetString("PORT"),

		MongoURI:     v.GetString("MONGO_URI"),
		MongoDB:      v.GetString("MONGO_DB"),
		MongoMaxPool: uint64(max(v.GetInt64("MONGO_MAX_POOL"), 0)),
		MongoMinPool: uint64(max(v.GetInt64("MONGO_MIN_POOL"), 0)),
		MongoTimeout: v.GetDuration("MONGO_TIMEOUT"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),
		JWTIssuer: v.GetString("JWT_ISSUER"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),

		CORSOrigins: v.GetString("CORS_ORIGINS"),

		Media: MediaConfig{
			Provider:  strings.ToLower(strings.TrimSpace(v.GetString("MEDIA_PROVIDER"))),
			Endpoint:  v.GetString("MEDIA_ENDPOINT"),
			Bucket:    v.GetString("MEDIA_BUCKET"),
			AccessKey: v.GetString("MEDIA_ACCESS_KEY"),
			SecretKey: v.GetString("MEDIA_SECRET_KEY"),
			Region:    v.GetString("MEDIA_REGION"),
			UseSSL:    v.GetBool("MEDIA_USE_SSL"),
			PublicURL: v.GetString("MEDIA_PUBLIC_URL"),
		},
		Admin: AdminConfig{
			Username: v.GetString("ADMIN_USERNAME"),
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var problems []string
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if c.MongoMaxPool == 0 {
		problems = append(problems, "MONGO_MAX_POOL must be positive")
	}
	if c.MongoMinPool > c.MongoMaxPool {
		problems = append(problems, "MONGO_MIN_POOL must not exceed MONGO_MAX_POOL")
	}
	if c.JWTTTL <= 0 {
		problems = append(problems, "JWT_TTL must be positive")
	}
	switch c.Media.Provider {
	case "":
	case "minio", "s3":
		if c.Media.Bucket == "" {
			problems = append(problems, "MEDIA_BUCKET is required when MEDIA_PROVIDER is set")
		}
	default:
		problems = append(problems, fmt.Sprintf("MEDIA_PROVIDER %q is not one of minio, s3", c.Media.Provider))
	}
	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}
