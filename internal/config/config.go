package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Backend    Backend    `yaml:"backend"`
	Session    Session    `yaml:"session"`
	SQLite     SQLite     `yaml:"sqlite"`
	Redis      Redis      `yaml:"redis"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3000" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// Backend points at the user service the login form checks against.
type Backend struct {
	UsersURL string        `yaml:"users_url" env:"BACKEND_USERS_URL" env-default:"http://localhost:8080/api/user" validate:"required,url"`
	Timeout  time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT" env-default:"5s" validate:"gte=0"`
}

type Session struct {
	Store  string        `yaml:"store" env:"SESSION_STORE" env-default:"memory" validate:"oneof=memory sqlite redis"`
	MaxAge time.Duration `yaml:"max_age" env:"SESSION_MAX_AGE" env-default:"24h" validate:"gt=0"`
	Secure bool          `yaml:"secure" env:"SESSION_SECURE" env-default:"false"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./data/postboard.db"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Load reads the config file at path, or only the environment when path is
// empty, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist at path: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	// PORT is what most hosting platforms set.
	if p := os.Getenv("PORT"); p != "" {
		cfg.HTTPServer.Address = ":" + p
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to config file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
