package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + optional .env file).
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string
	RedisURL            string
	MapboxToken         string // MAPBOX_ACCESS_TOKEN for forward geocoding
	AdminAPIKeyHash     string // bcrypt hash accepted as a Bearer credential on admin routes
	FrontendURLEndsWith string // CORS origin suffix, e.g. .example.org
	SessionCookie       string // session cookie written by the identity provider
}

// Load reads config from env vars and an optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}
	cookie := viper.GetString("SESSION_COOKIE_NAME")
	if cookie == "" {
		cookie = "metrodir.sid"
	}

	return &Config{
		Env:                 env,
		Port:                port,
		DatabaseURL:         viper.GetString("DATABASE_URL"),
		RedisURL:            viper.GetString("REDIS_URL"),
		MapboxToken:         viper.GetString("MAPBOX_ACCESS_TOKEN"),
		AdminAPIKeyHash:     viper.GetString("ADMIN_API_KEY_HASH"),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		SessionCookie:       cookie,
	}, nil
}
