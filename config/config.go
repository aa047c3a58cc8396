package config

import (
	"github.com/caarlos0/env/v11"

	"petcare-api/scoring"
)

// AppConfig holds everything tunable through the environment, including the
// moderation/duplicate policy constants.
type AppConfig struct {
	AppEnv     string `env:"APP_ENV" envDefault:"local"`
	Port       string `env:"PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"petcare"`

	Moderation scoring.Config
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
