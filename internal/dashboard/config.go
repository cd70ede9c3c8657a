package dashboard

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL" env-default:"http://localhost:5000"`
	Username       string        `env:"API_USERNAME"`
	Password       string        `env:"API_PASSWORD"`
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE" env-default:"300ms"`
	AlertTTL       time.Duration `env:"ALERT_TTL" env-default:"5s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
