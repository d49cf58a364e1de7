package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Env struct {
	AppAddr string `yaml:"app_addr" env:"APP_ADDR" env-default:":8080"`
	GinMode string `yaml:"gin_mode" env:"GIN_MODE"`

	DB    Database `yaml:"db"`
	Auth  Auth     `yaml:"auth"`
	Redis Redis    `yaml:"redis"`
	Log   Log      `yaml:"log"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"3306"`
	User     string `yaml:"user" env:"DB_USER" env-default:"root"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"bus_seats"`
	Migrate  bool   `yaml:"migrate" env:"DB_MIGRATE" env-default:"true"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"super-secret-key-change-me"`
	// Required guards every trip/passenger route with the bearer middleware.
	Required bool `yaml:"required" env:"AUTH_REQUIRED" env-default:"true"`
}

// Redis is optional; an empty Addr disables idempotency replay.
type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LoadEnv reads the YAML file named by CONFIG_PATH when set, then lets
// environment variables override it.
func LoadEnv() (Env, error) {
	var env Env

	path := strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	if path != "" {
		if err := cleanenv.ReadConfig(path, &env); err != nil {
			return env, fmt.Errorf("config error: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&env); err != nil {
		return env, fmt.Errorf("config error: %w", err)
	}

	origins := env.CORSAllowedOrigins[:0]
	for _, o := range env.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	env.CORSAllowedOrigins = origins

	return env, nil
}
