package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized step banners for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_WORKERS sets the pool size the scenario pipeline runs with
	Workers int `envconfig:"E2E_WORKERS" default:"4"`
	// E2E_BUFFER_SIZE sets the channel capacity between feeder and pool
	BufferSize int `envconfig:"E2E_BUFFER_SIZE" default:"16"`
	// E2E_DEDUP_THRESHOLD sets the edit-distance cutoff for the dataset build
	DedupThreshold int `envconfig:"E2E_DEDUP_THRESHOLD" default:"2"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
