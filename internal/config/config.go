package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	AppEnv      string
	DBDriver    string
	DatabaseURL string
	AutoMigrate bool
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3001")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("JWT_TTL", "60m")
	v.SetDefault("CORS_ORIGINS", "*")

	dsn := v.GetString("DATABASE_URL")
	if dsn == "" {
		dsn = v.GetString("POSTGRES_URL")
	}

	return &Config{
		Port:        v.GetString("PORT"),
		AppEnv:      v.GetString("APP_ENV"),
		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL: dsn,
		AutoMigrate: v.GetBool("AUTO_MIGRATE"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTTTL:      v.GetDuration("JWT_TTL"),
		CORSOrigins: splitOrigins(v.GetString("CORS_ORIGINS")),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
