package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment. The two
// timeout knobs are the only configuration the battle core itself depends on.
type Config struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	CardDataFile string        `env:"CARD_DATA_FILE" envDefault:"data.json"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	DraftTimeout time.Duration `env:"DRAFT_TIMEOUT" envDefault:"1000s"`
	RoundTimeout time.Duration `env:"ROUND_TIMEOUT" envDefault:"100s"`
}

// Load reads .env if present, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
